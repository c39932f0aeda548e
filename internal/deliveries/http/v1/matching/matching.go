package matching

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/http"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/validation"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/services"

	"github.com/labstack/echo/v4"
)

type matchingHandler struct {
	matchingSvc services.MatchingService
}

// New matching handler will initialize the clients/:clientId matching endpoints
func New(app *echo.Group, matchingSvc services.MatchingService) {
	handler := matchingHandler{
		matchingSvc: matchingSvc,
	}
	api := app.Group("/clients/:clientId")
	api.POST("/matching/preview", handler.preview)
	api.POST("/matching/commit", handler.commit)
	api.GET("/matches", handler.getMatches)
	api.POST("/matches", handler.createManualMatch)
	api.POST("/matches/unmatch", handler.unmatch)
}

// preview API dry run of the auto matcher
// @Summary Preview auto matching
// @Description Runs every active rule over the unmatched pool without writing anything
// @Tags Matching
// @Produce  json
// @Param clientId path string true "client id"
// @Success 200 {object} models.RunStats
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/matching/preview [post]
func (h *matchingHandler) preview(c echo.Context) error {
	req := new(models.ClientPathRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.matchingSvc.Preview(c.Request().Context(), req.ClientID)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

// commit API persist one auto matching run
// @Summary Commit auto matching
// @Description Runs every active rule and persists the selected groups atomically
// @Tags Matching
// @Produce  json
// @Param clientId path string true "client id"
// @Success 200 {object} models.CommitResult
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/matching/commit [post]
func (h *matchingHandler) commit(c echo.Context) error {
	req := new(models.ClientPathRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	// an empty actor means a system run, reserved for the worker
	ctx := c.Request().Context()
	actorID := xlog.GetActorID(ctx)
	if actorID == "" {
		return http.HandleServiceError(c, common.ErrMissingActor)
	}

	res, err := h.matchingSvc.Commit(ctx, req.ClientID, actorID)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

// getMatches API list the matches of a client with their members
// @Summary Get matches
// @Tags Matching
// @Produce  json
// @Param clientId path string true "client id"
// @Success 200 {object} http.RestTotalRowResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/matches [get]
func (h *matchingHandler) getMatches(c echo.Context) error {
	req := new(models.ClientPathRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.matchingSvc.GetMatches(c.Request().Context(), req.ClientID)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	data := make([]models.MatchOut, 0, len(res))
	for i := range res {
		data = append(data, res[i].ConvertToMatchOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// createManualMatch API group caller chosen transactions
// @Summary Create manual match
// @Tags Matching
// @Accept  json
// @Produce  json
// @Param clientId path string true "client id"
// @Param body body models.CreateManualMatchRequest true "body"
// @Success 201 {object} models.ManualMatchResult
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/matches [post]
func (h *matchingHandler) createManualMatch(c echo.Context) error {
	req := new(models.CreateManualMatchRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()
	res, err := h.matchingSvc.CreateManualMatch(ctx, req.ClientID, xlog.GetActorID(ctx), req.TransactionIDs)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

// unmatch API dissolve a match, every match, or detach one transaction
// @Summary Unmatch
// @Description Exactly one of matchId, all or transactionId must be set
// @Tags Matching
// @Accept  json
// @Produce  json
// @Param clientId path string true "client id"
// @Param body body models.UnmatchRequest true "body"
// @Success 200 {object} models.UnmatchResult
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/matches/unmatch [post]
func (h *matchingHandler) unmatch(c echo.Context) error {
	req := new(models.UnmatchRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	ctx := c.Request().Context()
	res, err := h.matchingSvc.Unmatch(ctx, req.ClientID, xlog.GetActorID(ctx), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}
