package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"todotech_backend/internal/domain/entities"
	"todotech_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentIntentsTableName = "payment_intents"
	paymentIntentsOrderIDIndex     = "order_id-index"
)

var ErrPaymentIntentAlreadyExists = errors.New("payment intent already exists")

type paymentIntentItem struct {
	ID             string  `dynamodbav:"id"`
	OrderID        int64   `dynamodbav:"order_id"`
	Provider       string  `dynamodbav:"provider"`
	PaymentMethod  string  `dynamodbav:"payment_method"`
	Status         string  `dynamodbav:"status"`
	Amount         float64 `dynamodbav:"amount"`
	AmountMinor    int64   `dynamodbav:"amount_minor"`
	Currency       string  `dynamodbav:"currency"`
	AmountReceived int64   `dynamodbav:"amount_received"`
	CustomerEmail  string  `dynamodbav:"customer_email,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// PaymentIntentDynamoRepository persists PaymentIntentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id, number)
type PaymentIntentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentIntentDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentIntentsTableName
	}
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, p entities.PaymentIntentRecord) (entities.PaymentIntentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentIntentItem(p))
	if err != nil {
		return entities.PaymentIntentRecord{}, err
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
		if isConditionalCheckFailed(err) {
			log.Printf("[payment][repository] payment intent already exists id=%s", p.ID)
			return entities.PaymentIntentRecord{}, ErrPaymentIntentAlreadyExists
		}
		log.Printf("[payment][repository] put failed id=%s table=%s err=%v", p.ID, r.tableName, err)
		return entities.PaymentIntentRecord{}, err
	}
	return p, nil
}

func (r *PaymentIntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntentRecord{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntentRecord{}, err
	}
	return fromPaymentIntentItem(it), nil
}

// UpdateStatus returns an empty record when id is not stored.
func (r *PaymentIntentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentIntentStatus, amountReceived int64) (entities.PaymentIntentRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, #amount_received = :amount_received, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#status":          "status",
			"#amount_received": "amount_received",
			"#updated_at":      "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":          &types.AttributeValueMemberS{Value: string(status)},
			":amount_received": &types.AttributeValueMemberN{Value: strconv.FormatInt(amountReceived, 10)},
			":updated_at":      &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentIntentRecord{}, nil
		}
		log.Printf("[payment][repository] update failed id=%s err=%v", id, err)
		return entities.PaymentIntentRecord{}, err
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentIntentRecord{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func (r *PaymentIntentDynamoRepository) ListByOrderID(ctx context.Context, orderID int64) ([]entities.PaymentIntentRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentIntentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberN{Value: strconv.FormatInt(orderID, 10)},
		},
	}

	items := make([]entities.PaymentIntentRecord, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentIntentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentIntentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toPaymentIntentItem(p entities.PaymentIntentRecord) paymentIntentItem {
	return paymentIntentItem{
		ID:             p.ID,
		OrderID:        p.OrderID,
		Provider:       string(p.Provider),
		PaymentMethod:  string(p.PaymentMethod),
		Status:         string(p.Status),
		Amount:         p.Amount,
		AmountMinor:    p.AmountMinor,
		Currency:       p.Currency,
		AmountReceived: p.AmountReceived,
		CustomerEmail:  p.CustomerEmail,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntentRecord {
	return entities.PaymentIntentRecord{
		ID:             it.ID,
		OrderID:        it.OrderID,
		Provider:       entities.PaymentProvider(it.Provider),
		PaymentMethod:  entities.PaymentMethod(it.PaymentMethod),
		Status:         entities.PaymentIntentStatus(it.Status),
		Amount:         it.Amount,
		AmountMinor:    it.AmountMinor,
		Currency:       it.Currency,
		AmountReceived: it.AmountReceived,
		CustomerEmail:  it.CustomerEmail,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
