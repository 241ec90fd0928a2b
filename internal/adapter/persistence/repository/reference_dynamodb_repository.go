package repository

import (
	"context"
	"strconv"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	patientKeyPrefix  = "PATIENT#"
	providerKeyPrefix = "PROVIDER#"
	planKeyPrefix     = "PLAN#"
)

type patientItem struct {
	PK          string `dynamodbav:"pk"`
	ID          int64  `dynamodbav:"id"`
	PatientCode string `dynamodbav:"patient_code"`
	FirstName   string `dynamodbav:"first_name"`
	LastName    string `dynamodbav:"last_name"`
	DateOfBirth string `dynamodbav:"date_of_birth"`
	Gender      string `dynamodbav:"gender"`
	PhoneNumber string `dynamodbav:"phone_number"`
}

type providerItem struct {
	PK           string   `dynamodbav:"pk"`
	ID           int64    `dynamodbav:"id"`
	ProviderCode string   `dynamodbav:"provider_code"`
	ProviderName string   `dynamodbav:"provider_name"`
	ProviderType string   `dynamodbav:"provider_type"`
	PhoneNumber  string   `dynamodbav:"phone_number"`
	Specialties  []string `dynamodbav:"specialties"`
}

type planItem struct {
	PK          string `dynamodbav:"pk"`
	ID          int64  `dynamodbav:"id"`
	PlanName    string `dynamodbav:"plan_name"`
	PlanCode    string `dynamodbav:"plan_code"`
	PlanType    string `dynamodbav:"plan_type"`
	CompanyName string `dynamodbav:"company_name"`
}

// ReferenceDynamoRepository reads reference records from a single table keyed by
// PATIENT#<id>, PROVIDER#<id> and PLAN#<id>.
type ReferenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReferenceDataRepository = (*ReferenceDynamoRepository)(nil)

func NewReferenceDynamoRepository(ddb *dynamodb.Client, tableName string) *ReferenceDynamoRepository {
	return &ReferenceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReferenceDynamoRepository) get(ctx context.Context, prefix string, id int64, out any) (bool, error) {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: prefix + strconv.FormatInt(id, 10)},
		},
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func (r *ReferenceDynamoRepository) PatientExists(ctx context.Context, id int64) (bool, error) {
	return r.get(ctx, patientKeyPrefix, id, nil)
}

func (r *ReferenceDynamoRepository) ProviderExists(ctx context.Context, id int64) (bool, error) {
	return r.get(ctx, providerKeyPrefix, id, nil)
}

func (r *ReferenceDynamoRepository) InsurancePlanExists(ctx context.Context, id int64) (bool, error) {
	return r.get(ctx, planKeyPrefix, id, nil)
}

func (r *ReferenceDynamoRepository) GetPatient(ctx context.Context, id int64) (*entities.PatientSummary, error) {
	var it patientItem
	found, err := r.get(ctx, patientKeyPrefix, id, &it)
	if err != nil || !found {
		return nil, err
	}
	dob, _ := entities.ParseDate(it.DateOfBirth)
	return &entities.PatientSummary{
		ID:          it.ID,
		PatientCode: it.PatientCode,
		FirstName:   it.FirstName,
		LastName:    it.LastName,
		DateOfBirth: dob,
		Gender:      it.Gender,
		PhoneNumber: it.PhoneNumber,
	}, nil
}

func (r *ReferenceDynamoRepository) GetProvider(ctx context.Context, id int64) (*entities.ProviderSummary, error) {
	var it providerItem
	found, err := r.get(ctx, providerKeyPrefix, id, &it)
	if err != nil || !found {
		return nil, err
	}
	return &entities.ProviderSummary{
		ID:           it.ID,
		ProviderCode: it.ProviderCode,
		ProviderName: it.ProviderName,
		ProviderType: it.ProviderType,
		PhoneNumber:  it.PhoneNumber,
		Specialties:  it.Specialties,
	}, nil
}

func (r *ReferenceDynamoRepository) GetInsurancePlan(ctx context.Context, id int64) (*entities.InsurancePlanSummary, error) {
	var it planItem
	found, err := r.get(ctx, planKeyPrefix, id, &it)
	if err != nil || !found {
		return nil, err
	}
	return &entities.InsurancePlanSummary{
		ID:          it.ID,
		PlanName:    it.PlanName,
		PlanCode:    it.PlanCode,
		PlanType:    it.PlanType,
		CompanyName: it.CompanyName,
	}, nil
}
