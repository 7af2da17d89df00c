/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/credentio/vce/internal/pkg/log"
)

var logger = log.New("rest-err")

// HTTPErrorHandler maps errors bubbling out of handlers onto the wire.
func HTTPErrorHandler(err error, c echo.Context) {
	code, message := processError(err)

	logger.Error("rest error", log.WithPath(c.Request().RequestURI),
		log.WithHTTPStatus(code), log.WithError(err))

	sendResponse(c, code, message)
}

func sendResponse(c echo.Context, code int, message interface{}) {
	var err error

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}

		if err != nil {
			logger.Error("write http response", log.WithError(err))
		}
	}
}

func processError(err error) (int, interface{}) {
	var rfcErr *RFCError[ErrorCode]

	if errors.As(err, &rfcErr) {
		status := rfcErr.HTTPStatus
		if status == 0 {
			status = rfcErr.ErrorCode.HTTPStatus()
		}

		return status, rfcErr
	}

	var echoErr *echo.HTTPError

	if errors.As(err, &echoErr) {
		message := echoErr.Message
		if echoErr.Internal != nil {
			message = err.Error()
		}

		if strMsg, ok := message.(string); ok {
			return echoErr.Code, map[string]interface{}{"message": strMsg}
		}

		return echoErr.Code, message
	}

	return http.StatusInternalServerError, map[string]interface{}{
		"error":             string(ErrorCodeSystemError),
		"error_description": err.Error(),
	}
}
