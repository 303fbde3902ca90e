package repository

import (
	"context"
	"errors"
	"time"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentRequestsTableName = "payment_requests"
	paymentRequestsAuxiliaryIndex   = "to_auxiliary_id-index"
)

type orderCommissionItem struct {
	OrderID     string `dynamodbav:"order_id"`
	OrderNumber string `dynamodbav:"order_number"`
	LaborTotal  int64  `dynamodbav:"labor_total"`
	Commission  int64  `dynamodbav:"commission"`
}

type paymentRequestItem struct {
	ID            string `dynamodbav:"id"`
	FromMasterID  string `dynamodbav:"from_master_id"`
	ToAuxiliaryID string `dynamodbav:"to_auxiliary_id"`

	TotalAmount          int64 `dynamodbav:"total_amount"`
	LaborAmount          int64 `dynamodbav:"labor_amount"`
	CommissionPercentage int64 `dynamodbav:"commission_percentage"`

	OrdersSummary []orderCommissionItem `dynamodbav:"orders_summary"`
	EarningIDs    []string              `dynamodbav:"earning_ids"`

	Status string `dynamodbav:"status"`
	Notes  string `dynamodbav:"notes,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	RespondedAt string `dynamodbav:"responded_at,omitempty"`
}

type PaymentRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRequestRepository = (*PaymentRequestDynamoRepository)(nil)

func NewPaymentRequestDynamoRepository(ddb *dynamodb.Client) *PaymentRequestDynamoRepository {
	return &PaymentRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_REQUESTS_TABLE", defaultPaymentRequestsTableName),
	}
}

func (r *PaymentRequestDynamoRepository) Create(ctx context.Context, pr entities.PaymentRequest) (entities.PaymentRequest, error) {
	av, err := attributevalue.MarshalMap(toPaymentRequestItem(pr))
	if err != nil {
		return entities.PaymentRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	return pr, nil
}

func (r *PaymentRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRequest{}, nil
	}

	var it paymentRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRequest{}, err
	}
	return fromPaymentRequestItem(it), nil
}

func (r *PaymentRequestDynamoRepository) ListByAuxiliary(ctx context.Context, auxiliaryID string) ([]entities.PaymentRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentRequestsAuxiliaryIndex),
		KeyConditionExpression: aws.String("to_auxiliary_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: auxiliaryID},
		},
	})
	if err != nil {
		return nil, err
	}

	requests := make([]entities.PaymentRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromPaymentRequestItem(it))
	}
	return requests, nil
}

// Accept flips pending to accepted exactly once. A failed condition returns
// the zero PaymentRequest.
func (r *PaymentRequestDynamoRepository) Accept(ctx context.Context, id string, at time.Time) (entities.PaymentRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :accepted, #responded_at = :responded_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#responded_at": "responded_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":      &types.AttributeValueMemberS{Value: string(entities.PaymentRequestPending)},
			":accepted":     &types.AttributeValueMemberS{Value: string(entities.PaymentRequestAccepted)},
			":responded_at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentRequest{}, nil
		}
		return entities.PaymentRequest{}, err
	}

	var it paymentRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRequest{}, err
	}
	return fromPaymentRequestItem(it), nil
}

func toPaymentRequestItem(pr entities.PaymentRequest) paymentRequestItem {
	summary := make([]orderCommissionItem, 0, len(pr.OrdersSummary))
	for _, oc := range pr.OrdersSummary {
		summary = append(summary, orderCommissionItem{
			OrderID:     oc.OrderID,
			OrderNumber: oc.OrderNumber,
			LaborTotal:  int64(oc.LaborTotal),
			Commission:  int64(oc.Commission),
		})
	}

	return paymentRequestItem{
		ID:                   pr.ID,
		FromMasterID:         pr.FromMasterID,
		ToAuxiliaryID:        pr.ToAuxiliaryID,
		TotalAmount:          int64(pr.TotalAmount),
		LaborAmount:          int64(pr.LaborAmount),
		CommissionPercentage: pr.CommissionPercentage,
		OrdersSummary:        summary,
		EarningIDs:           pr.EarningIDs,
		Status:               string(pr.Status),
		Notes:                pr.Notes,
		CreatedAt:            pr.CreatedAt.UTC().Format(time.RFC3339Nano),
		RespondedAt:          formatOptionalTime(pr.RespondedAt),
	}
}

func fromPaymentRequestItem(it paymentRequestItem) entities.PaymentRequest {
	summary := make([]entities.OrderCommission, 0, len(it.OrdersSummary))
	for _, oc := range it.OrdersSummary {
		summary = append(summary, entities.OrderCommission{
			OrderID:     oc.OrderID,
			OrderNumber: oc.OrderNumber,
			LaborTotal:  entities.Cents(oc.LaborTotal),
			Commission:  entities.Cents(oc.Commission),
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentRequest{
		ID:                   it.ID,
		FromMasterID:         it.FromMasterID,
		ToAuxiliaryID:        it.ToAuxiliaryID,
		TotalAmount:          entities.Cents(it.TotalAmount),
		LaborAmount:          entities.Cents(it.LaborAmount),
		CommissionPercentage: it.CommissionPercentage,
		OrdersSummary:        summary,
		EarningIDs:           it.EarningIDs,
		Status:               entities.PaymentRequestStatus(it.Status),
		Notes:                it.Notes,
		CreatedAt:            createdAt,
		RespondedAt:          parseOptionalTime(it.RespondedAt),
	}
}
