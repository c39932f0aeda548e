package rules

import (
	nethttp "net/http"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/http"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/validation"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"
	"bitbucket.org/Amartha/go-recon-matching/internal/services"

	"github.com/labstack/echo/v4"
)

type ruleHandler struct {
	ruleSvc services.RuleService
}

// New rule handler will initialize the clients/:clientId/rules resources endpoint
func New(app *echo.Group, ruleSvc services.RuleService) {
	handler := ruleHandler{
		ruleSvc: ruleSvc,
	}
	api := app.Group("/clients/:clientId/rules")
	api.GET("", handler.listRules)
	api.POST("", handler.createRule)
	api.GET("/:ruleId", handler.getRule)
	api.PUT("/:ruleId", handler.updateRule)
	api.DELETE("/:ruleId", handler.deleteRule)
}

// listRules API list every rule of a client in priority order
// @Summary List matching rules
// @Tags Rules
// @Produce  json
// @Param clientId path string true "client id"
// @Success 200 {object} http.RestTotalRowResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/rules [get]
func (h *ruleHandler) listRules(c echo.Context) error {
	req := new(models.ClientPathRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ruleSvc.List(c.Request().Context(), req.ClientID)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	data := make([]models.MatchingRuleOut, 0, len(res))
	for i := range res {
		data = append(data, res[i].ConvertToMatchingRuleOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

// createRule API create matching rule
// @Summary Create matching rule
// @Tags Rules
// @Accept  json
// @Produce  json
// @Param clientId path string true "client id"
// @Param body body models.CreateMatchingRuleRequest true "body"
// @Success 201 {object} models.MatchingRuleOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/rules [post]
func (h *ruleHandler) createRule(c echo.Context) error {
	req := new(models.CreateMatchingRuleRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ruleSvc.Create(c.Request().Context(), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ConvertToMatchingRuleOut())
}

// getRule API get one matching rule
// @Summary Get matching rule
// @Tags Rules
// @Produce  json
// @Param clientId path string true "client id"
// @Param ruleId path string true "rule id"
// @Success 200 {object} models.MatchingRuleOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/rules/{ruleId} [get]
func (h *ruleHandler) getRule(c echo.Context) error {
	req := new(models.RulePathRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ruleSvc.Get(c.Request().Context(), req.ClientID, req.RuleID)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ConvertToMatchingRuleOut())
}

// updateRule API replace a matching rule
// @Summary Update matching rule
// @Tags Rules
// @Accept  json
// @Produce  json
// @Param clientId path string true "client id"
// @Param ruleId path string true "rule id"
// @Param body body models.CreateMatchingRuleRequest true "body"
// @Success 200 {object} models.MatchingRuleOut
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/rules/{ruleId} [put]
func (h *ruleHandler) updateRule(c echo.Context) error {
	req := new(models.UpdateMatchingRuleRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.ruleSvc.Update(c.Request().Context(), *req)
	if err != nil {
		return http.HandleServiceError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ConvertToMatchingRuleOut())
}

// deleteRule API delete a matching rule
// @Summary Delete matching rule
// @Tags Rules
// @Param clientId path string true "client id"
// @Param ruleId path string true "rule id"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/clients/{clientId}/rules/{ruleId} [delete]
func (h *ruleHandler) deleteRule(c echo.Context) error {
	req := new(models.RulePathRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	if err := h.ruleSvc.Delete(c.Request().Context(), req.ClientID, req.RuleID); err != nil {
		return http.HandleServiceError(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}
