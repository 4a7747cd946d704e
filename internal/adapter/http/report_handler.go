package http

import (
	"net/http"
	"strconv"

	reportDomain "activity-report-service/internal/domain/report"
	reportuc "activity-report-service/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *reportuc.Usecase }

func NewReportHandler(uc *reportuc.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

type createReportReq struct {
	Title        string `json:"title"         validate:"required"`
	ActivityDate string `json:"activity_date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time"    validate:"required,hhmm"`
	EndTime      string `json:"end_time"      validate:"required,hhmm"`
	Description  string `json:"description"   validate:"required"`
	Location     string `json:"location"      validate:"required"`
	Participants string `json:"participants"`
	Status       string `json:"status"        validate:"omitempty,oneof=DRAFT SUBMITTED"`
}

func (h *ReportHandler) Create(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req createReportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := reportuc.CreateInput{
		Title:        req.Title,
		ActivityDate: req.ActivityDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Description:  req.Description,
		Location:     req.Location,
		Participants: req.Participants,
	}
	if req.Status != "" {
		s := reportDomain.Status(req.Status)
		in.Status = &s
	}

	rep, err := h.uc.Create(c.Request().Context(), in, a.ID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, rep)
}

func (h *ReportHandler) Get(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	rep, err := h.uc.Get(c.Request().Context(), id, a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	// absent and forbidden are the same 404 on purpose
	if rep == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "report not found"})
	}
	return c.JSON(http.StatusOK, rep)
}

type updateReportReq struct {
	Title        *string `json:"title"`
	ActivityDate *string `json:"activity_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime    *string `json:"start_time"    validate:"omitempty,hhmm"`
	EndTime      *string `json:"end_time"      validate:"omitempty,hhmm"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	Participants *string `json:"participants"`
	Status       *string `json:"status"        validate:"omitempty,reportstatus"`
}

func (h *ReportHandler) Update(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req updateReportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := reportuc.UpdateInput{
		ID:           id,
		Title:        req.Title,
		ActivityDate: req.ActivityDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Description:  req.Description,
		Location:     req.Location,
		Participants: req.Participants,
	}
	if req.Status != nil {
		s := reportDomain.Status(*req.Status)
		in.Status = &s
	}

	rep, err := h.uc.Update(c.Request().Context(), in, a.ID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) Delete(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	ok, err := h.uc.Delete(c.Request().Context(), id, a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "report not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReportHandler) List(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}

	var in reportuc.ListInput
	if v := c.QueryParam("status"); v != "" {
		s := reportDomain.Status(v)
		in.Status = &s
	}
	if v := c.QueryParam("created_by"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid created_by"})
		}
		in.CreatedBy = &id
	}
	if v := c.QueryParam("date_from"); v != "" {
		in.DateFrom = &v
	}
	if v := c.QueryParam("date_to"); v != "" {
		in.DateTo = &v
	}
	in.Search = c.QueryParam("search")
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		in.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
		}
		in.Offset = n
	}

	res, err := h.uc.List(c.Request().Context(), in, a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type reviewReq struct {
	Status  string `json:"status"  validate:"required,reviewdecision"`
	Comment string `json:"comment"`
}

func (h *ReportHandler) Review(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	rep, err := h.uc.Review(c.Request().Context(), reportuc.ReviewInput{
		ReportID: id,
		Decision: reportDomain.Status(req.Status),
		Comment:  req.Comment,
	}, a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

type addCommentReq struct {
	Comment string `json:"comment" validate:"required"`
}

func (h *ReportHandler) AddComment(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req addCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	com, err := h.uc.AddComment(c.Request().Context(), id, a.ID, req.Comment)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, com)
}

func (h *ReportHandler) ListComments(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	comments, err := h.uc.ListComments(c.Request().Context(), id, a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *ReportHandler) Dashboard(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	stats, err := h.uc.Dashboard(c.Request().Context(), a.ID, a.Role)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
