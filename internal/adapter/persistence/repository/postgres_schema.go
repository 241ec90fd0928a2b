package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// claimsSchema is applied by MigratePostgres. Every statement is idempotent.
var claimsSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		role VARCHAR(30) NOT NULL DEFAULT 'patient',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		patient_id VARCHAR(20) NOT NULL UNIQUE,
		date_of_birth DATE NOT NULL,
		gender VARCHAR(30),
		phone_number VARCHAR(20),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS healthcare_providers (
		id BIGSERIAL PRIMARY KEY,
		provider_id VARCHAR(20) NOT NULL UNIQUE,
		provider_name VARCHAR(255) NOT NULL,
		provider_type VARCHAR(30) NOT NULL,
		specialties TEXT[] NOT NULL DEFAULT '{}',
		phone_number VARCHAR(20),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS insurance_companies (
		id BIGSERIAL PRIMARY KEY,
		company_name VARCHAR(255) NOT NULL,
		company_code VARCHAR(20) NOT NULL UNIQUE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS insurance_plans (
		id BIGSERIAL PRIMARY KEY,
		insurance_company_id BIGINT NOT NULL REFERENCES insurance_companies(id),
		plan_name VARCHAR(255) NOT NULL,
		plan_code VARCHAR(50) NOT NULL UNIQUE,
		plan_type VARCHAR(30) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS claims (
		id BIGSERIAL PRIMARY KEY,
		claim_number VARCHAR(50) NOT NULL UNIQUE,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		provider_id BIGINT NOT NULL REFERENCES healthcare_providers(id),
		insurance_plan_id BIGINT NOT NULL REFERENCES insurance_plans(id),
		claim_type VARCHAR(30) NOT NULL,
		status VARCHAR(30) NOT NULL,
		priority_level INT NOT NULL DEFAULT 3,
		total_amount NUMERIC(10,2) NOT NULL,
		approved_amount NUMERIC(10,2),
		patient_responsibility NUMERIC(10,2),
		insurance_payment NUMERIC(10,2),
		service_date DATE NOT NULL,
		diagnosis_codes TEXT[] NOT NULL DEFAULT '{}',
		procedure_codes TEXT[] NOT NULL DEFAULT '{}',
		submitted_date TIMESTAMPTZ NOT NULL,
		processed_date TIMESTAMPTZ,
		paid_date TIMESTAMPTZ,
		assigned_adjuster_id BIGINT REFERENCES users(id),
		review_notes TEXT NOT NULL DEFAULT '',
		denial_reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_claims_patient ON claims (patient_id, submitted_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_claims_provider ON claims (provider_id, submitted_date DESC)`,
	`CREATE TABLE IF NOT EXISTS claim_line_items (
		id BIGSERIAL PRIMARY KEY,
		claim_id BIGINT NOT NULL REFERENCES claims(id) ON DELETE CASCADE,
		line_number INT NOT NULL,
		procedure_code VARCHAR(20) NOT NULL,
		procedure_description TEXT NOT NULL DEFAULT '',
		diagnosis_code VARCHAR(20) NOT NULL DEFAULT '',
		service_date DATE NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		allowed_amount NUMERIC(10,2),
		deductible_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		copay_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		coinsurance_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		not_covered_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		status VARCHAR(30) NOT NULL,
		denial_reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (claim_id, line_number)
	)`,
	`CREATE TABLE IF NOT EXISTS claim_number_sequences (
		bucket VARCHAR(30) PRIMARY KEY,
		last_value BIGINT NOT NULL
	)`,
}

// MigratePostgres creates the claims schema when it is missing.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range claimsSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
