package repository

import (
	"context"
	"time"

	"wiz_adquote/internal/domain/entities"
	"wiz_adquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

const defaultArtifactsTableName = "artifacts"

type artifactItem struct {
	ID        string `dynamodbav:"id"`
	DocType   string `dynamodbav:"doc_type"`
	FileName  string `dynamodbav:"file_name"`
	Path      string `dynamodbav:"path"`
	Company   string `dynamodbav:"company"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ArtifactDynamoRepository persists generated document artifacts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Artifact IDs are generated server-side (uuid), so Create uses a conditional
// put purely as a collision guard.
type ArtifactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	log       zerolog.Logger
}

var _ interfaces.IArtifactRepository = (*ArtifactDynamoRepository)(nil)

func NewArtifactDynamoRepository(ddb *dynamodb.Client, log zerolog.Logger) *ArtifactDynamoRepository {
	return &ArtifactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ARTIFACTS_TABLE", defaultArtifactsTableName),
		log:       log,
	}
}

func (r *ArtifactDynamoRepository) Create(ctx context.Context, a entities.Artifact) (entities.Artifact, error) {
	it := toArtifactItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Artifact{}, err
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
		return entities.Artifact{}, err
	}
	return a, nil
}

func (r *ArtifactDynamoRepository) GetByID(ctx context.Context, id string) (entities.Artifact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Artifact{}, err
	}
	if len(out.Item) == 0 {
		return entities.Artifact{}, nil
	}

	var it artifactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Artifact{}, err
	}
	return r.fromArtifactItem(it), nil
}

func toArtifactItem(a entities.Artifact) artifactItem {
	return artifactItem{
		ID:        a.ID,
		DocType:   string(a.DocType),
		FileName:  a.FileName,
		Path:      a.Path,
		Company:   a.Company,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (r *ArtifactDynamoRepository) fromArtifactItem(it artifactItem) entities.Artifact {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		r.log.Warn().Err(err).Str("artifact_id", it.ID).Str("created_at", it.CreatedAt).Msg("corrupt created_at on artifact record")
	}
	return entities.Artifact{
		ID:        it.ID,
		DocType:   entities.DocType(it.DocType),
		FileName:  it.FileName,
		Path:      it.Path,
		Company:   it.Company,
		CreatedAt: createdAt,
	}
}
