package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nextute/chatbot-be/repository"
	"github.com/nextute/chatbot-be/types"
)

type InstituteHandler interface {
	HandleListInstitutes(c *gin.Context)
	HandleCreateInstitute(c *gin.Context)
	HandleGetInstitute(c *gin.Context)
	HandleUpdateInstitute(c *gin.Context)
	HandleDeleteInstitute(c *gin.Context)
}

type instituteHandler struct {
	repo repository.InstituteRepo
}

func NewInstituteHandler(repo repository.InstituteRepo) InstituteHandler {
	return &instituteHandler{
		repo: repo,
	}
}

func (h *instituteHandler) HandleListInstitutes(c *gin.Context) {
	institutes, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   institutes,
	})
}

func (h *instituteHandler) HandleCreateInstitute(c *gin.Context) {
	var req types.CreateInstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	institute := &types.Institute{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Courses:  req.Courses,
		Fee:      req.Fee,
		Rating:   req.Rating,
		CreateAt: time.Now().Unix(),
		UpdateAt: time.Now().Unix(),
	}
	if err := h.repo.Create(c.Request.Context(), institute); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   institute,
	})
}

func (h *instituteHandler) HandleGetInstitute(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "id is required",
		})
		return
	}
	institute, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   institute,
	})
}

func (h *instituteHandler) HandleUpdateInstitute(c *gin.Context) {
	var req types.UpdateInstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	institute, err := h.repo.Get(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	if req.Name != "" {
		institute.Name = req.Name
	}
	if req.Address != "" {
		institute.Address = req.Address
	}
	if req.City != "" {
		institute.City = req.City
	}
	if len(req.Courses) > 0 {
		institute.Courses = req.Courses
	}
	if req.Fee != "" {
		institute.Fee = req.Fee
	}
	if req.Rating != 0 {
		institute.Rating = req.Rating
	}
	institute.UpdateAt = time.Now().Unix()

	if err := h.repo.Update(c.Request.Context(), req.ID, institute); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   institute,
	})
}

func (h *instituteHandler) HandleDeleteInstitute(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "id is required",
		})
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "institute deleted",
	})
}
