package repository

import (
	"context"
	"errors"
	"time"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSlotClaimsTableName = "booking_slot_claims"

// dynamoAPI is the subset of *dynamodb.Client used for slot claims.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type slotClaimItem struct {
	SlotKey   string `dynamodbav:"slot_key"`
	BookingID string `dynamodbav:"booking_id"`
	ClaimedAt string `dynamodbav:"claimed_at"`
}

// SlotClaimDynamoRepository is the compare-and-swap guard for booking creation.
//
// Table requirements:
//   - PK: slot_key (string)
//
// Every write is conditional, so two customers racing for the same mechanic and day
// cannot both hold the claim.

type SlotClaimDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISlotClaimRepository = (*SlotClaimDynamoRepository)(nil)

func NewSlotClaimDynamoRepository(ddb *dynamodb.Client) *SlotClaimDynamoRepository {
	return newSlotClaimRepository(ddb, getenvDefault("SLOT_CLAIMS_TABLE", defaultSlotClaimsTableName))
}

func newSlotClaimRepository(ddb dynamoAPI, tableName string) *SlotClaimDynamoRepository {
	return &SlotClaimDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SlotClaimDynamoRepository) Claim(ctx context.Context, c entities.SlotClaim) error {
	av, err := attributevalue.MarshalMap(toSlotClaimItem(c))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#slot_key)"),
		ExpressionAttributeNames: map[string]string{
			"#slot_key": "slot_key",
		},
	})
	return translateConditionFailure(err)
}

func (r *SlotClaimDynamoRepository) Get(ctx context.Context, slotKey string) (entities.SlotClaim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot_key": &types.AttributeValueMemberS{Value: slotKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SlotClaim{}, err
	}
	if len(out.Item) == 0 {
		return entities.SlotClaim{}, nil
	}

	var it slotClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SlotClaim{}, err
	}
	return fromSlotClaimItem(it), nil
}

func (r *SlotClaimDynamoRepository) Takeover(ctx context.Context, fromBookingID string, c entities.SlotClaim) error {
	av, err := attributevalue.MarshalMap(toSlotClaimItem(c))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#booking_id = :from"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: fromBookingID},
		},
	})
	return translateConditionFailure(err)
}

func (r *SlotClaimDynamoRepository) Release(ctx context.Context, slotKey, bookingID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot_key": &types.AttributeValueMemberS{Value: slotKey},
		},
		ConditionExpression: aws.String("#booking_id = :bid"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if errors.Is(translateConditionFailure(err), interfaces.ErrSlotClaimed) {
		// Someone else holds the slot now (or nobody): nothing of ours to release.
		return nil
	}
	return err
}

func translateConditionFailure(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrSlotClaimed
	}
	return err
}

func toSlotClaimItem(c entities.SlotClaim) slotClaimItem {
	return slotClaimItem{
		SlotKey:   c.SlotKey,
		BookingID: c.BookingID,
		ClaimedAt: c.ClaimedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSlotClaimItem(it slotClaimItem) entities.SlotClaim {
	claimedAt, _ := time.Parse(time.RFC3339Nano, it.ClaimedAt)
	return entities.SlotClaim{
		SlotKey:   it.SlotKey,
		BookingID: it.BookingID,
		ClaimedAt: claimedAt,
	}
}
