package repository

import (
	"context"

	"moto_garage/internal/domain/entities"
	"moto_garage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMechanicsTableName = "mechanics"

type mechanicItem struct {
	ID                   string `dynamodbav:"id"`
	Name                 string `dynamodbav:"name"`
	Contact              string `dynamodbav:"contact,omitempty"`
	Role                 string `dynamodbav:"role"`
	MasterID             string `dynamodbav:"master_id,omitempty"`
	CommissionPercentage int64  `dynamodbav:"commission_percentage,omitempty"`
}

// MechanicDynamoRepository is a read-only view over the mechanics table.
// Mechanic records are managed by the staff system; this service only
// consults them.

type MechanicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMechanicDirectory = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb *dynamodb.Client) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANICS_TABLE", defaultMechanicsTableName),
	}
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return entities.Mechanic{
		ID:                   it.ID,
		Name:                 it.Name,
		Contact:              it.Contact,
		Role:                 entities.MechanicRole(it.Role),
		MasterID:             it.MasterID,
		CommissionPercentage: it.CommissionPercentage,
	}, nil
}

func (r *MechanicDynamoRepository) IsMasterFor(ctx context.Context, masterID, auxiliaryID string) (bool, error) {
	aux, err := r.GetByID(ctx, auxiliaryID)
	if err != nil {
		return false, err
	}
	if aux.ID == "" || aux.Role != entities.MechanicRoleAuxiliary {
		return false, nil
	}
	return aux.MasterID == masterID, nil
}
