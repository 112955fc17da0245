// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION     = "owner"
	ADMIN_RELATION     = "admin"
	WORKSPACE_RELATION = "workspace"

	CAN_MANAGE_PERMISSION = "can_manage"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func WorkspaceTuple(workspaceId string) string {
	return "workspace:" + workspaceId
}

func BrandTuple(brandId string) string {
	return "brand:" + brandId
}
