package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raksika249/ecom-auth-service/internal/domain"
	"github.com/raksika249/ecom-auth-service/internal/storage"
)

type Config struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	UsersTable         string
	NotificationsTable string
}

// Storage keeps users and notifications in two DynamoDB tables, both
// addressed by point get/put only.
type Storage struct {
	db  *dynamodb.Client
	cfg Config
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.NotificationStorage = (*Storage)(nil)

func New(ctx context.Context, cfg Config) (*Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	db := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &Storage{db: db, cfg: cfg}, nil
}

func (s *Storage) GetUser(ctx context.Context, email string) (domain.User, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.cfg.UsersTable),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return domain.User{}, err
	}
	if out.Item == nil {
		return domain.User{}, storage.ErrNotFound
	}
	var user domain.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *Storage) PutUser(ctx context.Context, user domain.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return err
	}
	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.UsersTable),
		Item:      item,
	})
	return err
}

func (s *Storage) PutNotification(ctx context.Context, notification domain.Notification) error {
	item, err := attributevalue.MarshalMap(notification)
	if err != nil {
		return err
	}
	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.NotificationsTable),
		Item:      item,
	})
	return err
}
