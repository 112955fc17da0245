// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

var models = map[string]string{
	"v0": `model
  schema 1.1

type user

type workspace
  relations
    define admin: [user]
    define can_manage: admin

type brand
  relations
    define owner: [user]
    define workspace: [workspace]
    define can_manage: owner
`,
}

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) GetDSL() string {
	return models[p.version]
}

// GetModel transforms the DSL of the selected version, it panics on an
// unknown version or an invalid DSL since both are programming errors.
func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	dsl, ok := models[p.version]
	if !ok {
		panic("unknown authorization model version " + p.version)
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		panic(err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		panic(err)
	}

	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	p := new(AuthorizationModelProvider)
	p.version = version

	return p
}
