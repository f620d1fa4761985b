package repository

import (
	"context"
	"errors"
	"time"

	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApplicationsTableName = "supplier_applications"
	applicationsUserIndexName    = "user_id-index"
)

type applicationItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	Name         string `dynamodbav:"name"`
	NationalID   string `dynamodbav:"national_id"`
	VehiclePlate string `dynamodbav:"vehicle_plate"`
	Email        string `dynamodbav:"email"`
	TankerPhoto  string `dynamodbav:"tanker_photo"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// SupplierApplicationDynamoRepository persists SupplierApplication entities
// in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI (user_id-index): user_id
//
// The registry outlives any single process: admin approval must survive a
// restart, unlike demand points and live positions which are in-memory.

type SupplierApplicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISupplierApplicationRepository = (*SupplierApplicationDynamoRepository)(nil)

func NewSupplierApplicationDynamoRepository(ddb *dynamodb.Client) *SupplierApplicationDynamoRepository {
	return &SupplierApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPLICATIONS_TABLE", defaultApplicationsTableName),
	}
}

func (r *SupplierApplicationDynamoRepository) Create(ctx context.Context, a entities.SupplierApplication) (entities.SupplierApplication, error) {
	it := toApplicationItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SupplierApplication{}, err
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
		return entities.SupplierApplication{}, err
	}
	return a, nil
}

func (r *SupplierApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.SupplierApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SupplierApplication{}, err
	}
	if len(out.Item) == 0 {
		return entities.SupplierApplication{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SupplierApplication{}, err
	}
	return fromApplicationItem(it), nil
}

func (r *SupplierApplicationDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.SupplierApplication, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(applicationsUserIndexName),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.SupplierApplication{}, err
	}
	if len(out.Items) == 0 {
		return entities.SupplierApplication{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.SupplierApplication{}, err
	}
	return fromApplicationItem(it), nil
}

func (r *SupplierApplicationDynamoRepository) List(ctx context.Context) ([]entities.SupplierApplication, error) {
	var apps []entities.SupplierApplication
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it applicationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			apps = append(apps, fromApplicationItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return apps, nil
}

func (r *SupplierApplicationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ApplicationStatus) (entities.SupplierApplication, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SupplierApplication{}, nil
		}
		return entities.SupplierApplication{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SupplierApplication{}, nil
	}
	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SupplierApplication{}, err
	}
	return fromApplicationItem(it), nil
}

func toApplicationItem(a entities.SupplierApplication) applicationItem {
	return applicationItem{
		ID:           a.ID,
		UserID:       a.UserID,
		Name:         a.Name,
		NationalID:   a.NationalID,
		VehiclePlate: a.VehiclePlate,
		Email:        a.Email,
		TankerPhoto:  a.TankerPhoto,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromApplicationItem(it applicationItem) entities.SupplierApplication {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.SupplierApplication{
		ID:           it.ID,
		UserID:       it.UserID,
		Name:         it.Name,
		NationalID:   it.NationalID,
		VehiclePlate: it.VehiclePlate,
		Email:        it.Email,
		TankerPhoto:  it.TankerPhoto,
		Status:       entities.ApplicationStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
