package api

import (
	"net/http"
	"strconv"
	"strings"

	reqdto "rovera-leads/internal/handler/dto/request"
	resdto "rovera-leads/internal/handler/dto/response"
	"rovera-leads/internal/handler/httperr"
	"rovera-leads/internal/handler/middleware"
	"rovera-leads/internal/pkg/errs"
	"rovera-leads/internal/pkg/form"
	"rovera-leads/internal/usecase/commands"
	"rovera-leads/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	MsgLeadSaved          = "Lead salvo com sucesso"
	MsgLeadDeleted        = "Lead excluído com sucesso"
	MsgMissingFields      = "Campos obrigatórios faltando"
	MsgInvalidData        = "Dados inválidos"
	MsgInvalidRequest     = "Requisição inválida"
	MsgSaveLeadFailed     = "Erro ao salvar lead"
	MsgFetchLeadsFailed   = "Erro ao buscar leads"
	MsgDeleteLeadFailed   = "Erro ao excluir lead"
	MsgLeadNotFound       = "Lead não encontrado"
	MsgLeadIDRequired     = "ID do lead é obrigatório"
	MsgInvalidLeadID      = "ID do lead inválido"
	MsgUserEmailRequired  = "E-mail do usuário é obrigatório"
	MsgSessionUnavailable = "Não autenticado"
)

type LeadHandler struct {
	cmds commands.LeadCommands
	q    queries.LeadQueries
}

func NewLeadHandler(cmds commands.LeadCommands, q queries.LeadQueries) *LeadHandler {
	return &LeadHandler{cmds: cmds, q: q}
}

// @Summary Create lead
// @Description Store a financing simulation submitted through the public form. A signed-in session links the lead to the user.
// @Tags leads
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLeadRequest true "Lead form"
// @Success 201 {object} resdto.CreateLeadResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req reqdto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, nil)
		return
	}

	sessionEmail := middleware.GetUserEmail(c)
	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(sessionEmail))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrMissingRequiredFields):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgMissingFields, nil)
		case errs.Is(err, commands.ErrLeadValidation):
			detail := form.FromDomainError(err)
			var verr *commands.LeadValidationError
			if errs.As(err, &verr) {
				detail = verr.Fields
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidData, detail)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, MsgSaveLeadFailed, nil)
		}
		return
	}

	middleware.RecordLeadCreated(sessionEmail != "")
	c.JSON(http.StatusCreated, resdto.CreateLeadResponse{Message: MsgLeadSaved, ID: result.ID})
}

// @Summary Get leads
// @Description With `email`, returns that user's most recent lead or null. Without it, returns a page of leads, newest first, optionally filtered by `search` over name, email and phone.
// @Tags leads
// @Produce json
// @Security SessionCookie
// @Param email query string false "Owner email"
// @Param search query string false "Free text"
// @Param page query int false "Page, from 1" default(1)
// @Param limit query int false "Page size, up to 100" default(10)
// @Success 200 {object} resdto.LeadListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /leads [get]
func (h *LeadHandler) Get(c *gin.Context) {
	var query reqdto.ListLeadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, nil)
		return
	}

	if email := strings.TrimSpace(query.Email); email != "" {
		h.respondLatest(c, email)
		return
	}

	page, err := h.q.List(c.Request.Context(), queries.ListLeadsInput{
		Search: query.Search,
		Page:   atoiOrZero(query.Page),
		Limit:  atoiOrZero(query.Limit),
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, MsgFetchLeadsFailed, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeadPage(page))
}

// @Summary Latest lead of the signed-in user
// @Tags leads
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resdto.LeadResponse "null when the user has no lead"
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /leads/latest [get]
func (h *LeadHandler) Latest(c *gin.Context) {
	email := middleware.GetUserEmail(c)
	if email == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Error: MsgSessionUnavailable})
		return
	}
	h.respondLatest(c, email)
}

func (h *LeadHandler) respondLatest(c *gin.Context, email string) {
	view, err := h.q.LatestByUser(c.Request.Context(), email)
	if err != nil {
		if errs.Is(err, queries.ErrUserEmailRequired) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgUserEmailRequired, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, MsgFetchLeadsFailed, nil)
		return
	}
	if view == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeadView(view))
}

// @Summary Delete lead
// @Tags leads
// @Produce json
// @Security SessionCookie
// @Param id query string true "Lead id"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /leads [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	err := h.cmds.Delete(c.Request.Context(), c.Query("id"))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrLeadIDRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgLeadIDRequired, nil)
		case errs.Is(err, commands.ErrInvalidLeadID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidLeadID, nil)
		case errs.Is(err, commands.ErrLeadNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, MsgLeadNotFound, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, MsgDeleteLeadFailed, nil)
		}
		return
	}

	middleware.RecordLeadDeleted()
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: MsgLeadDeleted})
}

// unparsable values fall back to the paging defaults
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
