package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName   = "orders"
	defaultCountersTableName = "counters"
	ordersMechanicIDIndex    = "mechanic_id-index"
	ordersPublicTokenIndex   = "public_token-index"
	orderNumberCounterKey    = "orders"
)

type orderServiceItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	LaborCost int64  `dynamodbav:"labor_cost"`
	PartsCost int64  `dynamodbav:"parts_cost"`
	Price     int64  `dynamodbav:"price"`
}

type statusChangeItem struct {
	Status    string `dynamodbav:"status"`
	ChangedAt string `dynamodbav:"changed_at"`
	Note      string `dynamodbav:"note,omitempty"`
}

type orderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`

	MechanicID    string `dynamodbav:"mechanic_id"`
	ApprovedBy    string `dynamodbav:"approved_by,omitempty"`
	ClientID      string `dynamodbav:"client_id"`
	ClientContact string `dynamodbav:"client_contact,omitempty"`
	MotorcycleID  string `dynamodbav:"motorcycle_id"`

	Services       []orderServiceItem `dynamodbav:"services"`
	LaborTotal     int64              `dynamodbav:"labor_total"`
	PartsTotal     int64              `dynamodbav:"parts_total"`
	ApprovedExtras int64              `dynamodbav:"approved_extras"`
	TotalAmount    int64              `dynamodbav:"total_amount"`
	AdvancePayment int64              `dynamodbav:"advance_payment"`

	ManualTotalApplied bool `dynamodbav:"manual_total_applied"`
	OverrideStale      bool `dynamodbav:"override_stale"`

	IsPaid     bool   `dynamodbav:"is_paid"`
	PaidAt     string `dynamodbav:"paid_at,omitempty"`
	PaymentRef string `dynamodbav:"payment_ref,omitempty"`

	Status  string             `dynamodbav:"status"`
	History []statusChangeItem `dynamodbav:"history"`

	CancellationReason      string `dynamodbav:"cancellation_reason,omitempty"`
	CancellationRequestedAt string `dynamodbav:"cancellation_requested_at,omitempty"`

	SettlementID string `dynamodbav:"settlement_id,omitempty"`

	PublicToken      string `dynamodbav:"public_token"`
	ClientLastSeenAt string `dynamodbav:"client_last_seen_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: mechanic_id-index (PK: mechanic_id)
//   - GSI: public_token-index (PK: public_token)
//
// Order numbers come from an atomic counter item in the counters table, so
// uniqueness holds by construction. Every state transition is a conditional
// update; a failed condition comes back as the zero Order, matching the
// not-found convention of the read methods.

type OrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) NextOrderNumber(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderNumberCounterKey},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}

	var counter struct {
		Seq int64 `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return "", err
	}
	return fmt.Sprintf("OS-%06d", counter.Seq), nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByPublicToken(ctx context.Context, token string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPublicTokenIndex),
		KeyConditionExpression: aws.String("public_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByMechanic(ctx context.Context, mechanicID string) ([]entities.Order, error) {
	return r.queryByMechanic(ctx, mechanicID, "", nil)
}

func (r *OrderDynamoRepository) ListUnsettledPaid(ctx context.Context, mechanicID string) ([]entities.Order, error) {
	return r.queryByMechanic(ctx, mechanicID,
		"is_paid = :paid AND attribute_not_exists(settlement_id)",
		map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberBOOL{Value: true},
		},
	)
}

func (r *OrderDynamoRepository) queryByMechanic(ctx context.Context, mechanicID, filter string, filterValues map[string]types.AttributeValue) ([]entities.Order, error) {
	values := map[string]types.AttributeValue{
		":mid": &types.AttributeValueMemberS{Value: mechanicID},
	}
	for k, v := range filterValues {
		values[k] = v
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(ordersMechanicIDIndex),
		KeyConditionExpression:    aws.String("mechanic_id = :mid"),
		ExpressionAttributeValues: values,
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ChangeStatus(ctx context.Context, id, expectedStatus string, change entities.StatusChange) (entities.Order, error) {
	entry, err := attributevalue.MarshalList([]statusChangeItem{{
		Status:    change.Status,
		ChangedAt: change.ChangedAt.UTC().Format(time.RFC3339Nano),
		Note:      change.Note,
	}})
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "attribute_exists(#id) AND #status = :expected"
		expr := "SET #status = :status, #history = list_append(#history, :entry), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: expectedStatus},
			":status":     &types.AttributeValueMemberS{Value: change.Status},
			":entry":      &types.AttributeValueMemberL{Value: entry},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#history":    "history",
			"#updated_at": "updated_at",
		}
		return cond, expr, vals, names
	})
}

func (r *OrderDynamoRepository) FinalizePayment(ctx context.Context, id string, f entities.Finalization) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "attribute_exists(#id) AND #is_paid = :not_paid"
		expr := "SET #is_paid = :paid, #paid_at = :paid_at, #labor_total = :labor, #parts_total = :parts, #total_amount = :total, #manual_total_applied = :manual, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":not_paid":   &types.AttributeValueMemberBOOL{Value: false},
			":paid":       &types.AttributeValueMemberBOOL{Value: true},
			":paid_at":    &types.AttributeValueMemberS{Value: f.PaidAt.UTC().Format(time.RFC3339Nano)},
			":labor":      &types.AttributeValueMemberN{Value: centsToString(f.LaborTotal)},
			":parts":      &types.AttributeValueMemberN{Value: centsToString(f.PartsTotal)},
			":total":      &types.AttributeValueMemberN{Value: centsToString(f.Total)},
			":manual":     &types.AttributeValueMemberBOOL{Value: f.ManualApplied},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_paid":              "is_paid",
			"#paid_at":              "paid_at",
			"#labor_total":          "labor_total",
			"#parts_total":          "parts_total",
			"#total_amount":         "total_amount",
			"#manual_total_applied": "manual_total_applied",
			"#updated_at":           "updated_at",
		}
		if f.PaymentRef != "" {
			expr += ", #payment_ref = :payment_ref"
			vals[":payment_ref"] = &types.AttributeValueMemberS{Value: f.PaymentRef}
			names["#payment_ref"] = "payment_ref"
		}
		return cond, expr, vals, names
	})
}

func (r *OrderDynamoRepository) AppendService(ctx context.Context, id string, svc entities.OrderService, overrideApplied bool) (entities.Order, error) {
	entry, err := attributevalue.MarshalList([]orderServiceItem{{
		ID:        svc.ID,
		Name:      svc.Name,
		LaborCost: int64(svc.LaborCost),
		PartsCost: int64(svc.PartsCost),
		Price:     int64(svc.Price),
	}})
	if err != nil {
		return entities.Order{}, err
	}

	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "attribute_exists(#id)"
		expr := "SET #services = list_append(#services, :svc), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":svc":        &types.AttributeValueMemberL{Value: entry},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#services":   "services",
			"#updated_at": "updated_at",
		}
		if overrideApplied {
			// Manual total stays untouched; flag it stale instead.
			expr += ", #override_stale = :stale"
			vals[":stale"] = &types.AttributeValueMemberBOOL{Value: true}
			names["#override_stale"] = "override_stale"
		} else {
			expr += " ADD #total_amount :price"
			vals[":price"] = &types.AttributeValueMemberN{Value: centsToString(svc.Price)}
			names["#total_amount"] = "total_amount"
		}
		return cond, expr, vals, names
	})
}

func (r *OrderDynamoRepository) AddApprovedExtra(ctx context.Context, id string, amount entities.Cents, overrideApplied bool) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "attribute_exists(#id)"
		vals := map[string]types.AttributeValue{
			":amount":     &types.AttributeValueMemberN{Value: centsToString(amount)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#approved_extras": "approved_extras",
			"#updated_at":      "updated_at",
		}
		var expr string
		if overrideApplied {
			expr = "SET #updated_at = :updated_at, #override_stale = :stale ADD #approved_extras :amount"
			vals[":stale"] = &types.AttributeValueMemberBOOL{Value: true}
			names["#override_stale"] = "override_stale"
		} else {
			expr = "SET #updated_at = :updated_at ADD #approved_extras :amount, #total_amount :amount"
			names["#total_amount"] = "total_amount"
		}
		return cond, expr, vals, names
	})
}

func (r *OrderDynamoRepository) SetCancellation(ctx context.Context, id, reason string, at time.Time) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "attribute_exists(#id) AND attribute_not_exists(#cancellation_requested_at)"
		expr := "SET #cancellation_reason = :reason, #cancellation_requested_at = :at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":at":         &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#cancellation_reason":       "cancellation_reason",
			"#cancellation_requested_at": "cancellation_requested_at",
			"#updated_at":                "updated_at",
		}
		return cond, expr, vals, names
	})
}

func (r *OrderDynamoRepository) ClearCancellation(ctx context.Context, id string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		cond := "attribute_exists(#id)"
		expr := "REMOVE #cancellation_reason, #cancellation_requested_at SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#cancellation_reason":       "cancellation_reason",
			"#cancellation_requested_at": "cancellation_requested_at",
			"#updated_at":                "updated_at",
		}
		return cond, expr, vals, names
	})
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// MarkSettled is the atomic check-and-mark that guarantees an earning is
// referenced by at most one payment request. false means another request got
// there first (or the order is not a settleable paid order).
func (r *OrderDynamoRepository) MarkSettled(ctx context.Context, id, settlementID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #is_paid = :paid AND attribute_not_exists(#settlement_id)"),
		UpdateExpression:    aws.String("SET #settlement_id = :sid, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#is_paid":       "is_paid",
			"#settlement_id": "settlement_id",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberBOOL{Value: true},
			":sid":        &types.AttributeValueMemberS{Value: settlementID},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UnmarkSettled releases the claim only when the order still carries the
// given settlement id, so a rollback can never clear a claim that a
// different payment request owns.
func (r *OrderDynamoRepository) UnmarkSettled(ctx context.Context, id, settlementID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #settlement_id = :sid"),
		UpdateExpression:    aws.String("REMOVE #settlement_id SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#settlement_id": "settlement_id",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid":        &types.AttributeValueMemberS{Value: settlementID},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) TouchClientSeen(ctx context.Context, id string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #client_last_seen_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#client_last_seen_at": "client_last_seen_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (condExpr, updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	condExpr, updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	services := make([]orderServiceItem, 0, len(o.Services))
	for _, s := range o.Services {
		services = append(services, orderServiceItem{
			ID:        s.ID,
			Name:      s.Name,
			LaborCost: int64(s.LaborCost),
			PartsCost: int64(s.PartsCost),
			Price:     int64(s.Price),
		})
	}
	history := make([]statusChangeItem, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, statusChangeItem{
			Status:    h.Status,
			ChangedAt: h.ChangedAt.UTC().Format(time.RFC3339Nano),
			Note:      h.Note,
		})
	}

	return orderItem{
		ID:                      o.ID,
		OrderNumber:             o.OrderNumber,
		MechanicID:              o.MechanicID,
		ApprovedBy:              o.ApprovedBy,
		ClientID:                o.ClientID,
		ClientContact:           o.ClientContact,
		MotorcycleID:            o.MotorcycleID,
		Services:                services,
		LaborTotal:              int64(o.LaborTotal),
		PartsTotal:              int64(o.PartsTotal),
		ApprovedExtras:          int64(o.ApprovedExtras),
		TotalAmount:             int64(o.TotalAmount),
		AdvancePayment:          int64(o.AdvancePayment),
		ManualTotalApplied:      o.ManualTotalApplied,
		OverrideStale:           o.OverrideStale,
		IsPaid:                  o.IsPaid,
		PaidAt:                  formatOptionalTime(o.PaidAt),
		PaymentRef:              o.PaymentRef,
		Status:                  o.Status,
		History:                 history,
		CancellationReason:      o.CancellationReason,
		CancellationRequestedAt: formatOptionalTime(o.CancellationRequestedAt),
		SettlementID:            o.SettlementID,
		PublicToken:             o.PublicToken,
		ClientLastSeenAt:        formatOptionalTime(o.ClientLastSeenAt),
		CreatedAt:               o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:               o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	services := make([]entities.OrderService, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.OrderService{
			ID:        s.ID,
			Name:      s.Name,
			LaborCost: entities.Cents(s.LaborCost),
			PartsCost: entities.Cents(s.PartsCost),
			Price:     entities.Cents(s.Price),
		})
	}
	history := make([]entities.StatusChange, 0, len(it.History))
	for _, h := range it.History {
		changedAt, _ := time.Parse(time.RFC3339Nano, h.ChangedAt)
		history = append(history, entities.StatusChange{
			Status:    h.Status,
			ChangedAt: changedAt,
			Note:      h.Note,
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Order{
		ID:                      it.ID,
		OrderNumber:             it.OrderNumber,
		MechanicID:              it.MechanicID,
		ApprovedBy:              it.ApprovedBy,
		ClientID:                it.ClientID,
		ClientContact:           it.ClientContact,
		MotorcycleID:            it.MotorcycleID,
		Services:                services,
		LaborTotal:              entities.Cents(it.LaborTotal),
		PartsTotal:              entities.Cents(it.PartsTotal),
		ApprovedExtras:          entities.Cents(it.ApprovedExtras),
		TotalAmount:             entities.Cents(it.TotalAmount),
		AdvancePayment:          entities.Cents(it.AdvancePayment),
		ManualTotalApplied:      it.ManualTotalApplied,
		OverrideStale:           it.OverrideStale,
		IsPaid:                  it.IsPaid,
		PaidAt:                  parseOptionalTime(it.PaidAt),
		PaymentRef:              it.PaymentRef,
		Status:                  it.Status,
		History:                 history,
		CancellationReason:      it.CancellationReason,
		CancellationRequestedAt: parseOptionalTime(it.CancellationRequestedAt),
		SettlementID:            it.SettlementID,
		PublicToken:             it.PublicToken,
		ClientLastSeenAt:        parseOptionalTime(it.ClientLastSeenAt),
		CreatedAt:               createdAt,
		UpdatedAt:               updatedAt,
	}
}
