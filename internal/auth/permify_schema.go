package auth

import (
	"context"
	"fmt"

	v1 "buf.build/gen/go/permifyco/permify/protocolbuffers/go/base/v1"
)

// ClubSchema is the Permify model the relationship mirror writes against.
// Relation names match model.RelationAdmin, RelationMember and RelationSupervisor.
const ClubSchema = `entity user {}

entity club {
    relation admin @user
    relation member @user
    relation supervisor @user

    permission administer = admin
    permission observe = admin or member or supervisor
}
`

// WriteSchema installs schema in the tenant and pins the returned version for
// subsequent relationship writes.
func (s *PermifyService) WriteSchema(ctx context.Context, schema string) (string, error) {
	resp, err := s.client.Schema.Write(ctx, &v1.SchemaWriteRequest{
		TenantId: s.tenant,
		Schema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("writing permify schema: %w", err)
	}

	s.schemaVersion = resp.GetSchemaVersion()
	return s.schemaVersion, nil
}
