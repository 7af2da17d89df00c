/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package statuslist_test -source=controller.go -mock_names statusListService=MockStatusListService

package statuslist

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/credentio/vce/pkg/restapi/resterr"
	"github.com/credentio/vce/pkg/restapi/v1/util"
	statuslistsvc "github.com/credentio/vce/pkg/service/statuslist"
)

const (
	// Media type of the published signed status list document.
	listCredentialContentType = "application/jwt"
)

type statusListService interface {
	ListCredential(ctx context.Context) ([]byte, error)
}

// Config holds the dependencies of the status list API controller.
type Config struct {
	StatusListService statusListService

	// ListID is the path segment under which the deployment's single status
	// list is published.
	ListID string
}

// Controller serves the published status list. The endpoint is public:
// any relying party holding a credential with a status pointer resolves it
// here without authentication.
type Controller struct {
	statusListService statusListService
	listID            string
}

// NewController creates a new status list API controller.
func NewController(config *Config) *Controller {
	return &Controller{
		statusListService: config.StatusListService,
		listID:            config.ListID,
	}
}

// GetStatusList serves the signed status list document.
// GET /status-lists/:id.
func (c *Controller) GetStatusList(e echo.Context, id string) error {
	if id != c.listID {
		return resterr.NewCustomError(resterr.ErrorCodeStatusNotFound,
			fmt.Errorf("no status list with id %q", id)).UsePublicAPIResponse()
	}

	doc, err := c.statusListService.ListCredential(e.Request().Context())
	if err != nil {
		if errors.Is(err, statuslistsvc.ErrDataNotFound) {
			return resterr.NewCustomError(resterr.ErrorCodeStatusNotFound, err).UsePublicAPIResponse()
		}

		return resterr.NewSystemError(resterr.StatusListSvcComponent, "ListCredential", err)
	}

	return util.WriteRawOutputWithContentType(e)(doc, listCredentialContentType, nil)
}
