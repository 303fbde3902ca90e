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
	defaultOrderRequestsTableName = "order_requests"
	orderRequestsMasterIndex      = "master_id-index"
)

type orderDraftItem struct {
	ClientID       string             `dynamodbav:"client_id"`
	ClientContact  string             `dynamodbav:"client_contact,omitempty"`
	MotorcycleID   string             `dynamodbav:"motorcycle_id"`
	Services       []orderServiceItem `dynamodbav:"services"`
	AdvancePayment int64              `dynamodbav:"advance_payment"`
}

type orderRequestItem struct {
	ID         string `dynamodbav:"id"`
	MechanicID string `dynamodbav:"mechanic_id"`
	MasterID   string `dynamodbav:"master_id"`

	OrderData orderDraftItem `dynamodbav:"order_data"`

	Status         string `dynamodbav:"status"`
	CreatedOrderID string `dynamodbav:"created_order_id,omitempty"`
	ResponseNotes  string `dynamodbav:"response_notes,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	RespondedAt string `dynamodbav:"responded_at,omitempty"`
}

type OrderRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRequestRepository = (*OrderRequestDynamoRepository)(nil)

func NewOrderRequestDynamoRepository(ddb *dynamodb.Client) *OrderRequestDynamoRepository {
	return &OrderRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_REQUESTS_TABLE", defaultOrderRequestsTableName),
	}
}

func (r *OrderRequestDynamoRepository) Create(ctx context.Context, req entities.OrderRequest) (entities.OrderRequest, error) {
	av, err := attributevalue.MarshalMap(toOrderRequestItem(req))
	if err != nil {
		return entities.OrderRequest{}, err
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
		return entities.OrderRequest{}, err
	}
	return req, nil
}

func (r *OrderRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderRequest{}, nil
	}

	var it orderRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderRequest{}, err
	}
	return fromOrderRequestItem(it), nil
}

func (r *OrderRequestDynamoRepository) ListPendingByMaster(ctx context.Context, masterID string) ([]entities.OrderRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderRequestsMasterIndex),
		KeyConditionExpression: aws.String("master_id = :mid"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid":     &types.AttributeValueMemberS{Value: masterID},
			":pending": &types.AttributeValueMemberS{Value: string(entities.OrderRequestPending)},
		},
	})
	if err != nil {
		return nil, err
	}

	requests := make([]entities.OrderRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromOrderRequestItem(it))
	}
	return requests, nil
}

// Resolve writes the terminal decision, guarded on the request still being
// pending. A failed condition returns the zero OrderRequest.
func (r *OrderRequestDynamoRepository) Resolve(ctx context.Context, id string, status entities.OrderRequestStatus, createdOrderID, notes string, at time.Time) (entities.OrderRequest, error) {
	expr := "SET #status = :status, #responded_at = :responded_at"
	names := map[string]string{
		"#id":           "id",
		"#status":       "status",
		"#responded_at": "responded_at",
	}
	values := map[string]types.AttributeValue{
		":pending":      &types.AttributeValueMemberS{Value: string(entities.OrderRequestPending)},
		":status":       &types.AttributeValueMemberS{Value: string(status)},
		":responded_at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
	}
	if createdOrderID != "" {
		expr += ", #created_order_id = :created_order_id"
		names["#created_order_id"] = "created_order_id"
		values[":created_order_id"] = &types.AttributeValueMemberS{Value: createdOrderID}
	}
	if notes != "" {
		expr += ", #response_notes = :notes"
		names["#response_notes"] = "response_notes"
		values[":notes"] = &types.AttributeValueMemberS{Value: notes}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OrderRequest{}, nil
		}
		return entities.OrderRequest{}, err
	}

	var it orderRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrderRequest{}, err
	}
	return fromOrderRequestItem(it), nil
}

func toOrderRequestItem(req entities.OrderRequest) orderRequestItem {
	services := make([]orderServiceItem, 0, len(req.OrderData.Services))
	for _, s := range req.OrderData.Services {
		services = append(services, orderServiceItem{
			ID:        s.ID,
			Name:      s.Name,
			LaborCost: int64(s.LaborCost),
			PartsCost: int64(s.PartsCost),
			Price:     int64(s.Price),
		})
	}

	return orderRequestItem{
		ID:         req.ID,
		MechanicID: req.MechanicID,
		MasterID:   req.MasterID,
		OrderData: orderDraftItem{
			ClientID:       req.OrderData.ClientID,
			ClientContact:  req.OrderData.ClientContact,
			MotorcycleID:   req.OrderData.MotorcycleID,
			Services:       services,
			AdvancePayment: int64(req.OrderData.AdvancePayment),
		},
		Status:         string(req.Status),
		CreatedOrderID: req.CreatedOrderID,
		ResponseNotes:  req.ResponseNotes,
		CreatedAt:      req.CreatedAt.UTC().Format(time.RFC3339Nano),
		RespondedAt:    formatOptionalTime(req.RespondedAt),
	}
}

func fromOrderRequestItem(it orderRequestItem) entities.OrderRequest {
	services := make([]entities.OrderService, 0, len(it.OrderData.Services))
	for _, s := range it.OrderData.Services {
		services = append(services, entities.OrderService{
			ID:        s.ID,
			Name:      s.Name,
			LaborCost: entities.Cents(s.LaborCost),
			PartsCost: entities.Cents(s.PartsCost),
			Price:     entities.Cents(s.Price),
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.OrderRequest{
		ID:         it.ID,
		MechanicID: it.MechanicID,
		MasterID:   it.MasterID,
		OrderData: entities.OrderDraft{
			ClientID:       it.OrderData.ClientID,
			ClientContact:  it.OrderData.ClientContact,
			MotorcycleID:   it.OrderData.MotorcycleID,
			Services:       services,
			AdvancePayment: entities.Cents(it.OrderData.AdvancePayment),
		},
		Status:         entities.OrderRequestStatus(it.Status),
		CreatedOrderID: it.CreatedOrderID,
		ResponseNotes:  it.ResponseNotes,
		CreatedAt:      createdAt,
		RespondedAt:    parseOptionalTime(it.RespondedAt),
	}
}
