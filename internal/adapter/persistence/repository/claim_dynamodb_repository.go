package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	claimKeyPrefix       = "CLAIM#"
	claimNumberKeyPrefix = "CLAIMNO#"

	claimIDSequence    = "claim_id"
	lineItemIDSequence = "line_item_id"
)

type lineItemItem struct {
	ID                   int64  `dynamodbav:"id"`
	LineNumber           int    `dynamodbav:"line_number"`
	ProcedureCode        string `dynamodbav:"procedure_code"`
	ProcedureDescription string `dynamodbav:"procedure_description"`
	DiagnosisCode        string `dynamodbav:"diagnosis_code"`
	ServiceDate          string `dynamodbav:"service_date"`
	Quantity             int    `dynamodbav:"quantity"`
	UnitPrice            string `dynamodbav:"unit_price"`
	TotalAmount          string `dynamodbav:"total_amount"`
	AllowedAmount        string `dynamodbav:"allowed_amount"`
	DeductibleAmount     string `dynamodbav:"deductible_amount"`
	CopayAmount          string `dynamodbav:"copay_amount"`
	CoinsuranceAmount    string `dynamodbav:"coinsurance_amount"`
	NotCoveredAmount     string `dynamodbav:"not_covered_amount"`
	Status               string `dynamodbav:"status"`
	DenialReason         string `dynamodbav:"denial_reason"`
	CreatedAt            string `dynamodbav:"created_at"`
}

type claimItem struct {
	PK                    string         `dynamodbav:"pk"`
	ID                    int64          `dynamodbav:"id"`
	ClaimNumber           string         `dynamodbav:"claim_number"`
	PatientID             int64          `dynamodbav:"patient_id"`
	ProviderID            int64          `dynamodbav:"provider_id"`
	InsurancePlanID       int64          `dynamodbav:"insurance_plan_id"`
	ClaimType             string         `dynamodbav:"claim_type"`
	Status                string         `dynamodbav:"status"`
	PriorityLevel         int            `dynamodbav:"priority_level"`
	TotalAmount           string         `dynamodbav:"total_amount"`
	ApprovedAmount        string         `dynamodbav:"approved_amount"`
	PatientResponsibility string         `dynamodbav:"patient_responsibility"`
	InsurancePayment      string         `dynamodbav:"insurance_payment"`
	ServiceDate           string         `dynamodbav:"service_date"`
	DiagnosisCodes        []string       `dynamodbav:"diagnosis_codes"`
	ProcedureCodes        []string       `dynamodbav:"procedure_codes"`
	SubmittedAt           string         `dynamodbav:"submitted_at"`
	ProcessedAt           string         `dynamodbav:"processed_at"`
	PaidAt                string         `dynamodbav:"paid_at"`
	AssignedAdjusterID    int64          `dynamodbav:"assigned_adjuster_id"`
	ReviewNotes           string         `dynamodbav:"review_notes"`
	DenialReason          string         `dynamodbav:"denial_reason"`
	CreatedAt             string         `dynamodbav:"created_at"`
	UpdatedAt             string         `dynamodbav:"updated_at"`
	LineItems             []lineItemItem `dynamodbav:"line_items"`
}

type claimNumberItem struct {
	PK      string `dynamodbav:"pk"`
	ClaimID int64  `dynamodbav:"claim_id"`
}

// ClaimDynamoRepository persists claims in DynamoDB.
//
// Table requirements:
//   - claims table, PK: pk (string). Claims live under CLAIM#<id> with their line items
//     embedded; CLAIMNO#<number> items guard claim number uniqueness.
//   - sequences table, PK: name (string), counter attribute value (number).
//
// Listing scans the claim items and filters, sorts and pages in memory.
type ClaimDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	sequencesTable string
}

var (
	_ interfaces.IClaimRepository   = (*ClaimDynamoRepository)(nil)
	_ interfaces.ISequenceAllocator = (*ClaimDynamoRepository)(nil)
)

func NewClaimDynamoRepository(ddb *dynamodb.Client, tableName, sequencesTable string) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{ddb: ddb, tableName: tableName, sequencesTable: sequencesTable}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	id, err := r.Next(ctx, claimIDSequence)
	if err != nil {
		return entities.Claim{}, fmt.Errorf("allocate claim id: %w", err)
	}
	c.ID = id

	if n := int64(len(c.LineItems)); n > 0 {
		last, err := r.add(ctx, lineItemIDSequence, n)
		if err != nil {
			return entities.Claim{}, fmt.Errorf("allocate line item ids: %w", err)
		}
		for i := range c.LineItems {
			c.LineItems[i].ID = last - n + int64(i) + 1
			c.LineItems[i].ClaimID = c.ID
		}
	}

	claimAV, err := attributevalue.MarshalMap(toClaimItem(c))
	if err != nil {
		return entities.Claim{}, err
	}
	guardAV, err := attributevalue.MarshalMap(claimNumberItem{PK: claimNumberKeyPrefix + c.ClaimNumber, ClaimID: c.ID})
	if err != nil {
		return entities.Claim{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guardAV,
				ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{"#pk": "pk"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     claimAV,
				ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{"#pk": "pk"},
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) > 0 &&
			aws.ToString(tce.CancellationReasons[0].Code) == "ConditionalCheckFailed" {
			return entities.Claim{}, interfaces.ErrDuplicateClaimNumber
		}
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            claimKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it), nil
}

func (r *ClaimDynamoRepository) GetByNumber(ctx context.Context, claimNumber string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: claimNumberKeyPrefix + claimNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var guard claimNumberItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Claim{}, err
	}
	return r.GetByID(ctx, guard.ClaimID)
}

// Update sets every mutable claim attribute in one UpdateItem call.
func (r *ClaimDynamoRepository) Update(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	it := toClaimItem(c)
	fields := map[string]types.AttributeValue{
		"status":                 &types.AttributeValueMemberS{Value: it.Status},
		"priority_level":         &types.AttributeValueMemberN{Value: strconv.Itoa(it.PriorityLevel)},
		"approved_amount":        &types.AttributeValueMemberS{Value: it.ApprovedAmount},
		"patient_responsibility": &types.AttributeValueMemberS{Value: it.PatientResponsibility},
		"insurance_payment":      &types.AttributeValueMemberS{Value: it.InsurancePayment},
		"processed_at":           &types.AttributeValueMemberS{Value: it.ProcessedAt},
		"paid_at":                &types.AttributeValueMemberS{Value: it.PaidAt},
		"assigned_adjuster_id":   &types.AttributeValueMemberN{Value: strconv.FormatInt(it.AssignedAdjusterID, 10)},
		"review_notes":           &types.AttributeValueMemberS{Value: it.ReviewNotes},
		"denial_reason":          &types.AttributeValueMemberS{Value: it.DenialReason},
		"updated_at":             &types.AttributeValueMemberS{Value: it.UpdatedAt},
	}
	expr, names, values := setExpression(fields)

	return r.update(ctx, c.ID, expr, names, values)
}

func (r *ClaimDynamoRepository) UpdateLineItem(ctx context.Context, li entities.LineItem) error {
	c, err := r.GetByID(ctx, li.ClaimID)
	if err != nil || c.ID == 0 {
		return err
	}
	idx := -1
	for i := range c.LineItems {
		if c.LineItems[i].ID == li.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	expr := fmt.Sprintf("SET line_items[%d].#status = :status, line_items[%d].#reason = :reason", idx, idx)
	_, err = r.update(ctx, c.ID, expr,
		map[string]string{"#status": "status", "#reason": "denial_reason"},
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(li.Status)},
			":reason": &types.AttributeValueMemberS{Value: li.DenialReason},
		})
	return err
}

func (r *ClaimDynamoRepository) update(
	ctx context.Context,
	id int64,
	updateExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.Claim, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       claimKey(id),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": "pk"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Claim{}, nil
		}
		return entities.Claim{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Claim{}, nil
	}
	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it), nil
}

func (r *ClaimDynamoRepository) List(ctx context.Context, f entities.ClaimFilter) ([]entities.Claim, int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("begins_with(#pk, :prefix)"),
		ExpressionAttributeNames:  map[string]string{"#pk": "pk"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":prefix": &types.AttributeValueMemberS{Value: claimKeyPrefix}},
	})

	matched := []entities.Claim{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		var items []claimItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, 0, err
		}
		for _, it := range items {
			if c := fromClaimItem(it); f.Matches(c) {
				matched = append(matched, c)
			}
		}
	}

	entities.SortBySubmittedDesc(matched)
	return entities.Page(matched, f.Normalized()), len(matched), nil
}

func (r *ClaimDynamoRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		Select:                    types.SelectCount,
		FilterExpression:          aws.String("begins_with(#pk, :prefix)"),
		ExpressionAttributeNames:  map[string]string{"#pk": "pk"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":prefix": &types.AttributeValueMemberS{Value: claimNumberKeyPrefix + prefix}},
	})
	var n int64
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		n += int64(page.Count)
	}
	return n, nil
}

// Next bumps the named counter in the sequences table by one.
func (r *ClaimDynamoRepository) Next(ctx context.Context, bucket string) (int64, error) {
	return r.add(ctx, bucket, 1)
}

func (r *ClaimDynamoRepository) add(ctx context.Context, name string, delta int64) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.sequencesTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression:          aws.String("ADD #value :delta"),
		ExpressionAttributeNames:  map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":delta": &types.AttributeValueMemberN{Value: strconv.FormatInt(delta, 10)}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %s: missing counter value", name)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}

func (r *ClaimDynamoRepository) Ping(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	return err
}

func claimKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: claimKeyPrefix + strconv.FormatInt(id, 10)},
	}
}

// setExpression builds "SET #a = :a, ..." in a stable order.
func setExpression(fields map[string]types.AttributeValue) (string, map[string]string, map[string]types.AttributeValue) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	names := make(map[string]string, len(keys))
	values := make(map[string]types.AttributeValue, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("#%s = :%s", k, k))
		names["#"+k] = k
		values[":"+k] = fields[k]
	}
	return "SET " + strings.Join(parts, ", "), names, values
}

func toClaimItem(c entities.Claim) claimItem {
	it := claimItem{
		PK:                    claimKeyPrefix + strconv.FormatInt(c.ID, 10),
		ID:                    c.ID,
		ClaimNumber:           c.ClaimNumber,
		PatientID:             c.PatientID,
		ProviderID:            c.ProviderID,
		InsurancePlanID:       c.InsurancePlanID,
		ClaimType:             string(c.ClaimType),
		Status:                string(c.Status),
		PriorityLevel:         c.PriorityLevel,
		TotalAmount:           c.TotalAmount.String(),
		ApprovedAmount:        optionalDecimalString(c.ApprovedAmount),
		PatientResponsibility: optionalDecimalString(c.PatientResponsibility),
		InsurancePayment:      optionalDecimalString(c.InsurancePayment),
		ServiceDate:           entities.FormatDate(c.ServiceDate),
		DiagnosisCodes:        c.DiagnosisCodes,
		ProcedureCodes:        c.ProcedureCodes,
		SubmittedAt:           formatStoreTime(c.SubmittedAt),
		ProcessedAt:           formatOptionalStoreTime(c.ProcessedAt),
		PaidAt:                formatOptionalStoreTime(c.PaidAt),
		ReviewNotes:           c.ReviewNotes,
		DenialReason:          c.DenialReason,
		CreatedAt:             formatStoreTime(c.CreatedAt),
		UpdatedAt:             formatStoreTime(c.UpdatedAt),
	}
	if c.AssignedAdjusterID != nil {
		it.AssignedAdjusterID = *c.AssignedAdjusterID
	}
	for _, li := range c.LineItems {
		it.LineItems = append(it.LineItems, lineItemItem{
			ID:                   li.ID,
			LineNumber:           li.LineNumber,
			ProcedureCode:        li.ProcedureCode,
			ProcedureDescription: li.ProcedureDescription,
			DiagnosisCode:        li.DiagnosisCode,
			ServiceDate:          entities.FormatDate(li.ServiceDate),
			Quantity:             li.Quantity,
			UnitPrice:            li.UnitPrice.String(),
			TotalAmount:          li.TotalAmount.String(),
			AllowedAmount:        optionalDecimalString(li.AllowedAmount),
			DeductibleAmount:     li.DeductibleAmount.String(),
			CopayAmount:          li.CopayAmount.String(),
			CoinsuranceAmount:    li.CoinsuranceAmount.String(),
			NotCoveredAmount:     li.NotCoveredAmount.String(),
			Status:               string(li.Status),
			DenialReason:         li.DenialReason,
			CreatedAt:            formatStoreTime(li.CreatedAt),
		})
	}
	return it
}

func fromClaimItem(it claimItem) entities.Claim {
	serviceDate, _ := entities.ParseDate(it.ServiceDate)
	c := entities.Claim{
		ID:                    it.ID,
		ClaimNumber:           it.ClaimNumber,
		PatientID:             it.PatientID,
		ProviderID:            it.ProviderID,
		InsurancePlanID:       it.InsurancePlanID,
		ClaimType:             entities.ClaimType(it.ClaimType),
		Status:                entities.ClaimStatus(it.Status),
		PriorityLevel:         it.PriorityLevel,
		TotalAmount:           parseDecimal(it.TotalAmount),
		ApprovedAmount:        parseOptionalDecimal(it.ApprovedAmount),
		PatientResponsibility: parseOptionalDecimal(it.PatientResponsibility),
		InsurancePayment:      parseOptionalDecimal(it.InsurancePayment),
		ServiceDate:           serviceDate,
		DiagnosisCodes:        append([]string{}, it.DiagnosisCodes...),
		ProcedureCodes:        append([]string{}, it.ProcedureCodes...),
		SubmittedAt:           parseStoreTime(it.SubmittedAt),
		ProcessedAt:           parseOptionalStoreTime(it.ProcessedAt),
		PaidAt:                parseOptionalStoreTime(it.PaidAt),
		ReviewNotes:           it.ReviewNotes,
		DenialReason:          it.DenialReason,
		CreatedAt:             parseStoreTime(it.CreatedAt),
		UpdatedAt:             parseStoreTime(it.UpdatedAt),
	}
	if it.AssignedAdjusterID > 0 {
		id := it.AssignedAdjusterID
		c.AssignedAdjusterID = &id
	}
	for _, li := range it.LineItems {
		d, _ := entities.ParseDate(li.ServiceDate)
		c.LineItems = append(c.LineItems, entities.LineItem{
			ID:                   li.ID,
			ClaimID:              it.ID,
			LineNumber:           li.LineNumber,
			ProcedureCode:        li.ProcedureCode,
			ProcedureDescription: li.ProcedureDescription,
			DiagnosisCode:        li.DiagnosisCode,
			ServiceDate:          d,
			Quantity:             li.Quantity,
			UnitPrice:            parseDecimal(li.UnitPrice),
			TotalAmount:          parseDecimal(li.TotalAmount),
			AllowedAmount:        parseOptionalDecimal(li.AllowedAmount),
			DeductibleAmount:     parseDecimal(li.DeductibleAmount),
			CopayAmount:          parseDecimal(li.CopayAmount),
			CoinsuranceAmount:    parseDecimal(li.CoinsuranceAmount),
			NotCoveredAmount:     parseDecimal(li.NotCoveredAmount),
			Status:               entities.ClaimStatus(li.Status),
			DenialReason:         li.DenialReason,
			CreatedAt:            parseStoreTime(li.CreatedAt),
		})
	}
	return c
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
