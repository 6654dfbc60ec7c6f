// internal/auth/permify.go

package auth

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "buf.build/gen/go/permifyco/permify/protocolbuffers/go/base/v1"
	permify_grpc "github.com/Permify/permify-go/grpc"

	"github.com/desbravaprovas/clubcore/internal/model"
)

// PermifyService mirrors club relationships into a Permify tenant.
type PermifyService struct {
	client        *permify_grpc.Client
	tenant        string
	schemaVersion string
	snapToken     string
	depth         int32
}

func WithTenant(tenant string) func(*PermifyService) {
	return func(s *PermifyService) {
		s.tenant = tenant
	}
}

// WithSchemaVersion sets the schema version for the Permify service
func WithSchemaVersion(schemaVersion string) func(*PermifyService) {
	return func(s *PermifyService) {
		s.schemaVersion = schemaVersion
	}
}

// WithDepth sets the depth for the Permify service
func WithDepth(depth int32) func(*PermifyService) {
	return func(s *PermifyService) {
		s.depth = depth
	}
}

// NewPermifyService creates a new Permify service
func NewPermifyService(host string, options ...func(*PermifyService)) (*PermifyService, error) {
	client, err := permify_grpc.NewClient(
		permify_grpc.Config{
			Endpoint: host,
		},
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)

	if err != nil {
		return nil, err
	}

	service := &PermifyService{client: client, depth: 50}
	for _, o := range options {
		o(service)
	}

	if service.tenant == "" {
		service.tenant = "t1"
	}

	return service, nil
}

// CheckPermission checks if a subject has a permission on an entity
func (s *PermifyService) CheckPermission(ctx context.Context, entity model.Entity, permission string, subject model.Subject) (bool, error) {
	cr, err := s.client.Permission.Check(ctx, &v1.PermissionCheckRequest{
		TenantId: s.tenant,
		Metadata: &v1.PermissionCheckRequestMetadata{
			SnapToken:     s.snapToken,
			SchemaVersion: s.schemaVersion,
			Depth:         s.depth,
		},
		Entity:     &v1.Entity{Type: entity.Type, Id: entity.ID},
		Permission: permission,
		Subject:    &v1.Subject{Type: subject.Type, Id: subject.ID},
	})
	if err != nil {
		return false, err
	}

	return cr.Can == v1.CheckResult_CHECK_RESULT_ALLOWED, nil
}

// Relationship is one tuple written to the mirror.
type Relationship struct {
	Entity   model.Entity
	Relation string
	Subject  model.Subject
}

func (s *PermifyService) WriteRelationship(ctx context.Context, entity model.Entity, relation string, subject model.Subject) error {
	return s.WriteRelationships(ctx, []Relationship{{Entity: entity, Relation: relation, Subject: subject}})
}

// WriteRelationships writes rels in a single request.
func (s *PermifyService) WriteRelationships(ctx context.Context, rels []Relationship) error {
	if len(rels) == 0 {
		return nil
	}

	tuples := make([]*v1.Tuple, 0, len(rels))
	for _, r := range rels {
		tuples = append(tuples, &v1.Tuple{
			Entity:   &v1.Entity{Type: r.Entity.Type, Id: r.Entity.ID},
			Relation: r.Relation,
			Subject:  &v1.Subject{Type: r.Subject.Type, Id: r.Subject.ID},
		})
	}

	resp, err := s.client.Data.WriteRelationships(ctx, &v1.RelationshipWriteRequest{
		TenantId: s.tenant,
		Metadata: &v1.RelationshipWriteRequestMetadata{
			SchemaVersion: s.schemaVersion,
		},
		Tuples: tuples,
	})
	if err != nil {
		return err
	}

	s.snapToken = resp.GetSnapToken()
	return nil
}

func (s *PermifyService) DeleteRelationship(ctx context.Context, entity model.Entity, relation string, subject model.Subject) error {
	_, err := s.client.Data.DeleteRelationships(ctx, &v1.RelationshipDeleteRequest{
		TenantId: s.tenant,
		Filter: &v1.TupleFilter{
			Entity: &v1.EntityFilter{
				Type: entity.Type,
				Ids:  []string{entity.ID},
			},
			Relation: relation,
			Subject: &v1.SubjectFilter{
				Type: subject.Type,
				Ids:  []string{subject.ID},
			},
		},
	})
	return err
}
