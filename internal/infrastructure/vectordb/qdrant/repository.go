// Package qdrant provides a VectorDB implementation using Qdrant.
package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ersonp/lore-forge/internal/domain/entities"
	"github.com/ersonp/lore-forge/internal/infrastructure/config"
)

// Payload keys stored alongside each character vector.
const (
	payloadName      = "name"
	payloadArchetype = "archetype"
	payloadOrigin    = "origin"
	payloadAge       = "age"
)

// Repository implements the VectorDB and CollectionManager interfaces using Qdrant.
type Repository struct {
	client     pb.CollectionsClient
	points     pb.PointsClient
	collection string
	conn       *grpc.ClientConn
}

// NewRepository creates a new Qdrant repository.
func NewRepository(cfg config.QdrantConfig) (*Repository, error) {
	if cfg.Collection == "" {
		return nil, fmt.Errorf("qdrant collection name is required")
	}
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &Repository{
		client:     pb.NewCollectionsClient(conn),
		points:     pb.NewPointsClient(conn),
		collection: cfg.Collection,
		conn:       conn,
	}, nil
}

// Close closes the gRPC connection.
func (r *Repository) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// Collection returns the collection name.
func (r *Repository) Collection() string {
	return r.collection
}

// EnsureCollection creates the collection if it doesn't exist.
func (r *Repository) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	_, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err == nil {
		return nil
	}

	_, err = r.client.Create(ctx, &pb.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	return nil
}

// DeleteCollection removes the collection and all its vectors.
func (r *Repository) DeleteCollection(ctx context.Context) error {
	_, err := r.client.Delete(ctx, &pb.DeleteCollection{
		CollectionName: r.collection,
	})
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// SaveBatch stores character vectors, replacing any with the same ID.
func (r *Repository) SaveBatch(ctx context.Context, vectors []entities.CharacterVector) error {
	if len(vectors) == 0 {
		return nil
	}

	points := make([]*pb.PointStruct, 0, len(vectors))
	for _, v := range vectors {
		point, err := toPoint(v)
		if err != nil {
			return err
		}
		points = append(points, point)
	}

	_, err := r.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: r.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upserting points: %w", err)
	}

	return nil
}

// Search performs a semantic search and returns similar characters.
func (r *Repository) Search(ctx context.Context, embedding []float32, limit int) ([]entities.SimilarCharacter, error) {
	return r.search(ctx, embedding, nil, limit)
}

// SearchByArchetype performs a semantic search filtered by archetype.
func (r *Repository) SearchByArchetype(ctx context.Context, embedding []float32, archetype entities.Archetype, limit int) ([]entities.SimilarCharacter, error) {
	return r.search(ctx, embedding, keywordFilter(payloadArchetype, string(archetype)), limit)
}

func (r *Repository) search(ctx context.Context, embedding []float32, filter *pb.Filter, limit int) ([]entities.SimilarCharacter, error) {
	resp, err := r.points.Search(ctx, &pb.SearchPoints{
		CollectionName: r.collection,
		Vector:         embedding,
		Limit:          uint64(limit),
		Filter:         filter,
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("searching points: %w", err)
	}

	return scoredPointsToCharacters(resp.Result), nil
}

// Delete removes a character vector by its ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	pointID, err := toPointID(id)
	if err != nil {
		return err
	}

	_, err = r.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: r.collection,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{
					Ids: []*pb.PointId{pointID},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting point: %w", err)
	}

	return nil
}

// Count returns the number of stored vectors.
func (r *Repository) Count(ctx context.Context) (uint64, error) {
	resp, err := r.client.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: r.collection,
	})
	if err != nil {
		return 0, fmt.Errorf("getting collection info: %w", err)
	}

	if resp.Result.PointsCount == nil {
		return 0, nil
	}

	return *resp.Result.PointsCount, nil
}

// toPointID converts an archive ID to a Qdrant point ID. Qdrant only
// accepts UUIDs or unsigned integers, and archive IDs are UUIDs.
func toPointID(id string) (*pb.PointId, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("vector id %q is not a UUID: %w", id, err)
	}
	return &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: id}}, nil
}

func toPoint(v entities.CharacterVector) (*pb.PointStruct, error) {
	id, err := toPointID(v.ID)
	if err != nil {
		return nil, err
	}
	if len(v.Embedding) == 0 {
		return nil, fmt.Errorf("vector %s has no embedding", v.ID)
	}

	return &pb.PointStruct{
		Id: id,
		Vectors: &pb.Vectors{
			VectorsOptions: &pb.Vectors_Vector{
				Vector: &pb.Vector{Data: v.Embedding},
			},
		},
		Payload: map[string]*pb.Value{
			payloadName:      {Kind: &pb.Value_StringValue{StringValue: v.Name}},
			payloadArchetype: {Kind: &pb.Value_StringValue{StringValue: string(v.Archetype)}},
			payloadOrigin:    {Kind: &pb.Value_StringValue{StringValue: string(v.Origin)}},
			payloadAge:       {Kind: &pb.Value_IntegerValue{IntegerValue: int64(v.Age)}},
		},
	}, nil
}

func keywordFilter(key, value string) *pb.Filter {
	return &pb.Filter{
		Must: []*pb.Condition{
			{
				ConditionOneOf: &pb.Condition_Field{
					Field: &pb.FieldCondition{
						Key: key,
						Match: &pb.Match{
							MatchValue: &pb.Match_Keyword{Keyword: value},
						},
					},
				},
			},
		},
	}
}

// scoredPointsToCharacters converts search hits, keeping Qdrant's order.
func scoredPointsToCharacters(points []*pb.ScoredPoint) []entities.SimilarCharacter {
	chars := make([]entities.SimilarCharacter, 0, len(points))

	for _, point := range points {
		payload := point.Payload
		chars = append(chars, entities.SimilarCharacter{
			ID:        point.GetId().GetUuid(),
			Name:      getStringValue(payload, payloadName),
			Archetype: entities.Archetype(getStringValue(payload, payloadArchetype)),
			Origin:    entities.Origin(getStringValue(payload, payloadOrigin)),
			Age:       int(getIntValue(payload, payloadAge)),
			Score:     point.GetScore(),
		})
	}

	return chars
}

// Helper functions for payload extraction.
func getStringValue(payload map[string]*pb.Value, key string) string {
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func getIntValue(payload map[string]*pb.Value, key string) int64 {
	if v, ok := payload[key]; ok {
		return v.GetIntegerValue()
	}
	return 0
}
