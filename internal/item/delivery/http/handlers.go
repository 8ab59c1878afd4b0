package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trade-custody/pkg/response"
)

// UpdateStatus godoc
// @Summary     Update custody status of a batch of items
// @Description Applies one action (delivered, delivered_to_user, pending) to every item in order.
// @Description Unknown ids are skipped. Reverting toward pending is ADMIN only and aborts the whole batch otherwise.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body updateStatusReq true "Batch status update"
// @Success     200  {object} updateStatusResp
// @Failure     400  {object} response.ResultResp "Bad Request"
// @Failure     403  {object} response.ResultResp "Forbidden"
// @Failure     429  {object} response.Resp       "Too Many Requests"
// @Failure     500  {object} response.ResultResp "Internal Server Error"
// @Router      /api/v1/items/status [POST]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateStatus: %v", err)
		response.Fail(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newUpdateStatusResp(output))
}

// List godoc
// @Summary     List items
// @Description Returns a paginated list of items with optional custody status filter.
// @Tags        Items
// @Produce     json
// @Param       status query string false "Filter by status (pending/at_org/delivered)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID, as looked up after a QR scan.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processItemID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Audits godoc
// @Summary     Get item custody history
// @Description Returns every recorded status transition of an item, oldest first.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} auditsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id}/audits [GET]
func (h *handler) Audits(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processItemID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Audits(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Audits: %v", err)
		h.renderError(c, err)
		return
	}

	response.OK(c, h.newAuditsResp(output))
}
