package gateway

import (
	"context"
	"net/http"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/errors"
)

// UserGateway implements user.Directory over the REST API.
type UserGateway struct {
	client *Client
}

func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

func (g *UserGateway) ListUsers(ctx context.Context) ([]*user.User, error) {
	var env listEnvelope[userWire]
	if err := g.client.do(ctx, request{
		op:     "list_users",
		method: http.MethodGet,
		path:   constants.APIPathUsers,
		result: &env,
	}); err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(env.Data))
	for i := range env.Data {
		u, err := env.Data[i].toDomain()
		if err != nil {
			return nil, errors.NewTransportError("invalid user in API response", err.Error()).WithCause(err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (g *UserGateway) GetUser(ctx context.Context, id string) (*user.User, error) {
	var w userWire
	if err := g.client.do(ctx, request{
		op:         "get_user",
		method:     http.MethodGet,
		path:       constants.APIPathUser,
		pathParams: map[string]string{"id": id},
		result:     &w,
	}); err != nil {
		return nil, err
	}

	u, err := w.toDomain()
	if err != nil {
		return nil, errors.NewTransportError("invalid user in API response", err.Error()).WithCause(err)
	}
	return u, nil
}
