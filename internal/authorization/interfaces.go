// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/lighthouse-hq/lighthouse/internal/openfga"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ValidateModel(context.Context) error

	AssignWorkspaceAdmin(context.Context, string, string) error
	AssignBrandOwner(context.Context, string, string) error
	LinkBrandToWorkspace(context.Context, string, string) error

	CanManageWorkspace(context.Context, string, string) (bool, error)
	CanManageBrand(context.Context, string, string) (bool, error)

	DeleteWorkspace(context.Context, string) error
	DeleteBrand(context.Context, string) error
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
