package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/sidjay999/Secretsanta/internal/database"
	apperrors "github.com/sidjay999/Secretsanta/internal/errors"
	"github.com/sidjay999/Secretsanta/internal/models"
)

// GroupRepository is the read/write contract against the group store. One
// document per group; the only post-creation mutation is the revealed flag.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group *models.Group, overwrite bool) *apperrors.AppError
	GetGroup(ctx context.Context, groupID string) (*models.Group, *apperrors.AppError)
	ListGroupIDs(ctx context.Context) ([]string, *apperrors.AppError)
	MarkRevealed(ctx context.Context, groupID, name string) *apperrors.AppError
}

type groupRepo struct {
	db *database.DynamoDBClient
}

func NewGroupRepository(db *database.DynamoDBClient) GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) CreateGroup(ctx context.Context, group *models.Group, overwrite bool) *apperrors.AppError {
	group.PK = models.GroupPK(group.GroupId)
	group.SK = models.MetaSK()
	group.CreatedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(group)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal group")
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.db.Table()),
		Item:      item,
	}
	if !overwrite {
		input.ConditionExpression = aws.String("attribute_not_exists(PK)")
	}

	if _, err := r.db.Client.PutItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.New(apperrors.CodeAlreadyExists, "group already exists")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create group")
	}

	return nil
}

func (r *groupRepo) GetGroup(ctx context.Context, groupID string) (*models.Group, *apperrors.AppError) {
	result, err := r.db.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.GroupPK(groupID)},
			"SK": &types.AttributeValueMemberS{Value: models.MetaSK()},
		},
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get group")
	}

	if result.Item == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "group not found")
	}

	var group models.Group
	if err := attributevalue.UnmarshalMap(result.Item, &group); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to unmarshal group")
	}

	return &group, nil
}

func (r *groupRepo) ListGroupIDs(ctx context.Context) ([]string, *apperrors.AppError) {
	ids := make([]string, 0)

	var startKey map[string]types.AttributeValue
	for {
		result, err := r.db.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.db.Table()),
			FilterExpression:     aws.String("begins_with(PK, :prefix) AND SK = :meta"),
			ProjectionExpression: aws.String("PK"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: models.GroupPKPrefix()},
				":meta":   &types.AttributeValueMemberS{Value: models.MetaSK()},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list groups")
		}

		for _, item := range result.Items {
			pk, ok := item["PK"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			id, idErr := models.ExtractGroupID(pk.Value)
			if idErr != nil {
				continue
			}
			ids = append(ids, id)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return ids, nil
}

func (r *groupRepo) MarkRevealed(ctx context.Context, groupID, name string) *apperrors.AppError {
	_, err := r.db.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.db.Table()),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.GroupPK(groupID)},
			"SK": &types.AttributeValueMemberS{Value: models.MetaSK()},
		},
		UpdateExpression:    aws.String("SET members.#name.revealed = :true"),
		ConditionExpression: aws.String("attribute_exists(members.#name)"),
		ExpressionAttributeNames: map[string]string{
			"#name": name,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.New(apperrors.CodeNotFound, "member not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to mark member revealed")
	}

	return nil
}
