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
	defaultServiceUpdatesTableName = "service_updates"
	serviceUpdatesOrderIDIndex     = "order_id-index"
)

type serviceUpdateItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	Type        string `dynamodbav:"type"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`

	EstimatedPrice        int64  `dynamodbav:"estimated_price"`
	RequiresAuthorization bool   `dynamodbav:"requires_authorization"`
	AuthorizationStatus   string `dynamodbav:"authorization_status"`

	Photos []string `dynamodbav:"photos,omitempty"`

	CreatedAt  string `dynamodbav:"created_at"`
	ResolvedAt string `dynamodbav:"resolved_at,omitempty"`
}

type ServiceUpdateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceUpdateRepository = (*ServiceUpdateDynamoRepository)(nil)

func NewServiceUpdateDynamoRepository(ddb *dynamodb.Client) *ServiceUpdateDynamoRepository {
	return &ServiceUpdateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_UPDATES_TABLE", defaultServiceUpdatesTableName),
	}
}

func (r *ServiceUpdateDynamoRepository) Create(ctx context.Context, u entities.ServiceUpdate) (entities.ServiceUpdate, error) {
	av, err := attributevalue.MarshalMap(toServiceUpdateItem(u))
	if err != nil {
		return entities.ServiceUpdate{}, err
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
		return entities.ServiceUpdate{}, err
	}
	return u, nil
}

func (r *ServiceUpdateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceUpdate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceUpdate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceUpdate{}, nil
	}

	var it serviceUpdateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceUpdate{}, err
	}
	return fromServiceUpdateItem(it), nil
}

func (r *ServiceUpdateDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ServiceUpdate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceUpdatesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	updates := make([]entities.ServiceUpdate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceUpdateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		updates = append(updates, fromServiceUpdateItem(it))
	}
	return updates, nil
}

// Resolve writes the terminal decision, guarded on the update still being
// pending. A failed condition returns the zero ServiceUpdate.
func (r *ServiceUpdateDynamoRepository) Resolve(ctx context.Context, id string, status entities.AuthorizationStatus, at time.Time) (entities.ServiceUpdate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #authorization_status = :pending"),
		UpdateExpression:    aws.String("SET #authorization_status = :status, #resolved_at = :resolved_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                   "id",
			"#authorization_status": "authorization_status",
			"#resolved_at":          "resolved_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.AuthorizationPending)},
			":status":      &types.AttributeValueMemberS{Value: string(status)},
			":resolved_at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceUpdate{}, nil
		}
		return entities.ServiceUpdate{}, err
	}

	var it serviceUpdateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceUpdate{}, err
	}
	return fromServiceUpdateItem(it), nil
}

func toServiceUpdateItem(u entities.ServiceUpdate) serviceUpdateItem {
	return serviceUpdateItem{
		ID:                    u.ID,
		OrderID:               u.OrderID,
		Type:                  u.Type,
		Title:                 u.Title,
		Description:           u.Description,
		EstimatedPrice:        int64(u.EstimatedPrice),
		RequiresAuthorization: u.RequiresAuthorization,
		AuthorizationStatus:   string(u.AuthorizationStatus),
		Photos:                u.Photos,
		CreatedAt:             u.CreatedAt.UTC().Format(time.RFC3339Nano),
		ResolvedAt:            formatOptionalTime(u.ResolvedAt),
	}
}

func fromServiceUpdateItem(it serviceUpdateItem) entities.ServiceUpdate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ServiceUpdate{
		ID:                    it.ID,
		OrderID:               it.OrderID,
		Type:                  it.Type,
		Title:                 it.Title,
		Description:           it.Description,
		EstimatedPrice:        entities.Cents(it.EstimatedPrice),
		RequiresAuthorization: it.RequiresAuthorization,
		AuthorizationStatus:   entities.AuthorizationStatus(it.AuthorizationStatus),
		Photos:                it.Photos,
		CreatedAt:             createdAt,
		ResolvedAt:            parseOptionalTime(it.ResolvedAt),
	}
}
