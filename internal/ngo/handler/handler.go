package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ngodirectory/go-services/internal/ngo"
	"github.com/ngodirectory/go-services/internal/ngo/service"
	"github.com/ngodirectory/go-services/pkg/logger"
	"github.com/ngodirectory/go-services/pkg/metrics"
)

// orgRequest is the write payload shared by create and update.
type orgRequest struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

func (r orgRequest) fields() ngo.Fields {
	return ngo.Fields{
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		Website:     r.Website,
		Category:    r.Category,
		Description: r.Description,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
	}
}

// RegisterRoutes mounts the public and admin directory endpoints.
func RegisterRoutes(r *gin.Engine, svc *service.Service) {
	r.GET("/organizations", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context(), c.Query("search"), c.Query("category"))
		if err != nil {
			fail(c, "list", err)
			return
		}
		metrics.DirectoryRequests.WithLabelValues("list", "ok").Inc()
		c.JSON(http.StatusOK, emptyAsSlice(list))
	})

	r.GET("/organizations/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			metrics.DirectoryRequests.WithLabelValues("get", "not_found").Inc()
			return
		}
		rec, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, "get", err)
			return
		}
		metrics.DirectoryRequests.WithLabelValues("get", "ok").Inc()
		c.JSON(http.StatusOK, rec)
	})

	r.POST("/organizations", func(c *gin.Context) {
		var req orgRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.DirectoryRequests.WithLabelValues("create", "bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		id, err := svc.Create(c.Request.Context(), req.fields())
		if err != nil {
			fail(c, "create", err)
			return
		}
		metrics.DirectoryRequests.WithLabelValues("create", "ok").Inc()
		c.JSON(http.StatusCreated, gin.H{"id": id})
	})

	r.PUT("/organizations/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			metrics.DirectoryRequests.WithLabelValues("update", "not_found").Inc()
			return
		}
		var req orgRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.DirectoryRequests.WithLabelValues("update", "bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.Update(c.Request.Context(), id, req.fields()); err != nil {
			fail(c, "update", err)
			return
		}
		metrics.DirectoryRequests.WithLabelValues("update", "ok").Inc()
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.DELETE("/organizations/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			metrics.DirectoryRequests.WithLabelValues("delete", "not_found").Inc()
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, "delete", err)
			return
		}
		metrics.DirectoryRequests.WithLabelValues("delete", "ok").Inc()
		c.Status(http.StatusNoContent)
	})

	r.GET("/admin/organizations", func(c *gin.Context) {
		list, err := svc.AdminList(c.Request.Context())
		if err != nil {
			fail(c, "admin_list", err)
			return
		}
		metrics.DirectoryRequests.WithLabelValues("admin_list", "ok").Inc()
		c.JSON(http.StatusOK, emptyAsSlice(list))
	})
}

// pathID parses the :id parameter; a non-numeric id cannot match any record,
// so it is reported as not found.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return 0, false
	}
	return id, true
}

func fail(c *gin.Context, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.DirectoryRequests.WithLabelValues(op, "bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, service.ErrNotFound):
		metrics.DirectoryRequests.WithLabelValues(op, "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
	default:
		// storage detail is logged, never echoed to the client
		logger.Errorf("%s failed: %v", op, err)
		metrics.DirectoryRequests.WithLabelValues(op, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func emptyAsSlice(list []ngo.NGO) []ngo.NGO {
	if list == nil {
		return []ngo.NGO{}
	}
	return list
}
