// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/openfga"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer mirrors installation and brand ownership into openfga and
// answers the admin API permission checks.
type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignWorkspaceAdmin(ctx context.Context, workspaceId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignWorkspaceAdmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), ADMIN_RELATION, WorkspaceTuple(workspaceId))
}

func (a *Authorizer) AssignBrandOwner(ctx context.Context, brandId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignBrandOwner")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), OWNER_RELATION, BrandTuple(brandId))
}

func (a *Authorizer) LinkBrandToWorkspace(ctx context.Context, brandId, workspaceId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkBrandToWorkspace")
	defer span.End()

	return a.client.WriteTuple(ctx, WorkspaceTuple(workspaceId), WORKSPACE_RELATION, BrandTuple(brandId))
}

func (a *Authorizer) CanManageWorkspace(ctx context.Context, userId, workspaceId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageWorkspace")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), CAN_MANAGE_PERMISSION, WorkspaceTuple(workspaceId))
}

func (a *Authorizer) CanManageBrand(ctx context.Context, userId, brandId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageBrand")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), CAN_MANAGE_PERMISSION, BrandTuple(brandId))
}

// DeleteWorkspace removes the tuples on the workspace and the links from the
// workspace to brands.
func (a *Authorizer) DeleteWorkspace(ctx context.Context, workspaceId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteWorkspace")
	defer span.End()

	if err := a.deleteMatching(ctx, "", "", WorkspaceTuple(workspaceId)); err != nil {
		return err
	}

	return a.deleteMatching(ctx, WorkspaceTuple(workspaceId), WORKSPACE_RELATION, "brand:")
}

func (a *Authorizer) DeleteBrand(ctx context.Context, brandId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteBrand")
	defer span.End()

	return a.deleteMatching(ctx, "", "", BrandTuple(brandId))
}

func (a *Authorizer) deleteMatching(ctx context.Context, user, relation, object string) error {
	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, user, relation, object, cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
