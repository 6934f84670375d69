package handlers

import (
	"net/http"
	"time"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter wires every endpoint to its handler. The database handle is
// passed down explicitly; nothing here relies on process-global state.
func NewRouter(db *gorm.DB, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	userHandler := NewUserHandler(db)
	taskHandler := NewTaskHandler(db)
	statusHandler := NewTaskStatusHandler(db)
	typeHandler := NewTaskTypeHandler(db)
	attributeHandler := NewTaskAttributeHandler(db)
	attributeTypeHandler := NewTaskAttributeTypeHandler(db)
	attributeValueHandler := NewAttributeValueHandler(db)
	attributeToTypeHandler := NewAttributeToTypeHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", taskHandler.Index)

	r.POST("/user", userHandler.Create)
	r.GET("/user/:user_id", userHandler.Get)
	r.PUT("/user/:user_id", userHandler.Update)
	r.DELETE("/user/:user_id", userHandler.Delete)
	r.GET("/users", userHandler.List)
	r.POST("/users", userHandler.Search)

	r.POST("/task", taskHandler.Create)
	r.GET("/task/:task_id", taskHandler.Get)
	r.PUT("/task/:task_id", taskHandler.Update)
	r.DELETE("/task/:task_id", taskHandler.Delete)
	r.GET("/tasks", taskHandler.List)
	r.POST("/tasks", taskHandler.Search)

	r.POST("/task/status", statusHandler.Create)
	r.GET("/task/status/:status_id", statusHandler.Get)
	r.PUT("/task/status/:status_id", statusHandler.Update)
	r.DELETE("/task/status/:status_id", statusHandler.Delete)
	r.GET("/task/statuses", statusHandler.List)
	r.POST("/task/statuses", statusHandler.Search)

	r.POST("/task/type", typeHandler.Create)
	r.GET("/task/type/:type_id", typeHandler.Get)
	r.PUT("/task/type/:type_id", typeHandler.Update)
	r.DELETE("/task/type/:type_id", typeHandler.Delete)
	r.GET("/task/types", typeHandler.List)
	r.POST("/task/types", typeHandler.Search)

	r.POST("/task/attribute", attributeHandler.Create)
	r.GET("/task/attribute/:attribute_id", attributeHandler.Get)
	r.PUT("/task/attribute/:attribute_id", attributeHandler.Update)
	r.DELETE("/task/attribute/:attribute_id", attributeHandler.Delete)
	r.GET("/task/attributes", attributeHandler.List)
	r.POST("/task/attributes", attributeHandler.Search)

	r.POST("/task/attribute/type", attributeTypeHandler.Create)
	r.GET("/task/attribute/type/:attribute_type_id", attributeTypeHandler.Get)
	r.PUT("/task/attribute/type/:attribute_type_id", attributeTypeHandler.Update)
	r.DELETE("/task/attribute/type/:attribute_type_id", attributeTypeHandler.Delete)
	r.GET("/task/attribute/types", attributeTypeHandler.List)
	r.POST("/task/attribute/types", attributeTypeHandler.Search)

	r.POST("/task/attribute/value", attributeValueHandler.Create)
	r.GET("/task/attribute/value/:task_id/:task_attribute_id", attributeValueHandler.Get)
	r.PUT("/task/attribute/value/:task_id/:task_attribute_id", attributeValueHandler.Update)
	r.DELETE("/task/attribute/value/:task_id/:task_attribute_id", attributeValueHandler.Delete)
	r.GET("/task/attribute/values", attributeValueHandler.List)
	r.POST("/task/attribute/values", attributeValueHandler.Search)

	r.POST("/task/attribute-to-type", attributeToTypeHandler.Create)
	r.GET("/task/attribute-to-type/:task_type_id/:task_attribute_id", attributeToTypeHandler.Get)
	r.PUT("/task/attribute-to-type/:task_type_id/:task_attribute_id", attributeToTypeHandler.Update)
	r.DELETE("/task/attribute-to-type/:task_type_id/:task_attribute_id", attributeToTypeHandler.Delete)
	r.GET("/task/attribute-to-types", attributeToTypeHandler.List)
	r.POST("/task/attribute-to-types", attributeToTypeHandler.Search)

	return r
}
