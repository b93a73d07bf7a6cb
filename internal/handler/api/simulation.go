package api

import (
	"net/http"

	reqdto "rovera-leads/internal/handler/dto/request"
	resdto "rovera-leads/internal/handler/dto/response"
	"rovera-leads/internal/handler/httperr"
	"rovera-leads/internal/pkg/form"
	"rovera-leads/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SimulationHandler struct {
	q queries.SimulationQueries
}

func NewSimulationHandler(q queries.SimulationQueries) *SimulationHandler {
	return &SimulationHandler{q: q}
}

// @Summary Simulate financing
// @Description Zero-interest installment plan for an amount in centavos.
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body reqdto.SimulationRequest true "Amount and term"
// @Success 200 {object} resdto.SimulationResponse
// @Failure 400 {object} httperr.Response
// @Router /simulations [post]
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req reqdto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, nil)
		return
	}

	view, err := h.q.Simulate(req.ValorDesejado.Int64(), req.Parcelas.Int())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidData, form.FromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resdto.FromSimulationView(view))
}
