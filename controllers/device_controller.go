package controllers

import (
	"net/http"
	"strconv"

	"github.com/Ondrysak/GastroTartarus/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(ps *services.PushService) *DeviceController {
	return &DeviceController{Push: ps}
}

// POST /api/devices
func (dc *DeviceController) Register(c *gin.Context) {
	uid := c.MustGet("userID").(uint)

	var req services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := dc.Push.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"device_id": dev.ID, "platform": dev.Platform})
}

// GET /api/alerts?limit=
func ListAlerts(c *gin.Context) {
	uid := c.MustGet("userID").(uint)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	alerts, err := services.ListAlerts(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": alerts, "count": len(alerts)})
}
