package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/club-loyal/internal/domain"
)

// ConfigHandler таблица начислений. Хранится в памяти процесса, после перезапуска берется из конфигурации.
type ConfigHandler struct {
	rewardSvs RewardServicer
}

func NewConfigHandler(rewardSvs RewardServicer) *ConfigHandler {
	return &ConfigHandler{rewardSvs: rewardSvs}
}

// Show GET RouteGroup + ConfigRoute.
func (h *ConfigHandler) Show(c *gin.Context) {
	c.JSON(http.StatusOK, h.rewardSvs.Schedule())
}

// Update PATCH RouteGroup + ConfigRoute. Меняет только переданные значения.
func (h *ConfigHandler) Update(c *gin.Context) {
	var params domain.PointScheduleUpdate
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	schedule, err := h.rewardSvs.UpdateSchedule(params)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}
