package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ozank/collegium/internal/app/controllers"
	"github.com/ozank/collegium/internal/app/models"
	"github.com/ozank/collegium/internal/app/models/dto"
	"github.com/ozank/collegium/internal/middleware"
)

// staffRoles may mutate records; readRoles may only look at them.
var (
	staffRoles = []models.Role{models.RoleAdmin, models.RoleSuperUser}
	readRoles  = []models.Role{models.RoleAdmin, models.RoleSuperUser, models.RoleUser, models.RoleStudent}
)

// SetupRouter configures all application routes under /api/v1.
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/auth/roles", ctrl.Auth.Roles)

	// Students carry enrollment and code-addressed operations on top of
	// the generic read surface.
	students := authenticated.Group("/students")
	{
		studentsRead := students.Group("")
		studentsRead.Use(authMiddleware.RoleRequired(readRoles...))
		{
			studentsRead.GET("", ctrl.Students.List)
			studentsRead.GET("/count", ctrl.Students.Count)
			studentsRead.GET("/:id", ctrl.Students.Get)
			studentsRead.GET("/code/:code", ctrl.Students.GetByCode)
		}

		studentsStaff := students.Group("")
		studentsStaff.Use(authMiddleware.RoleRequired(staffRoles...))
		{
			studentsStaff.POST("", ctrl.Students.Enroll)
			studentsStaff.PUT("", ctrl.Students.UpdateByCode)
			studentsStaff.DELETE("/code/:code", ctrl.Students.DeleteByCode)
		}
	}

	// Departments fill membership counters on single reads.
	departments := authenticated.Group("/departments")
	{
		departmentsRead := departments.Group("")
		departmentsRead.Use(authMiddleware.RoleRequired(readRoles...))
		{
			departmentsRead.GET("", ctrl.Departments.List)
			departmentsRead.GET("/count", ctrl.Departments.Count)
			departmentsRead.GET("/:id", ctrl.Departments.Get)
		}

		departmentsStaff := departments.Group("")
		departmentsStaff.Use(authMiddleware.RoleRequired(staffRoles...))
		{
			departmentsStaff.POST("", ctrl.Departments.Create)
			departmentsStaff.PUT("/:id", ctrl.Departments.Update)
			departmentsStaff.DELETE("/:id", ctrl.Departments.Delete)
		}
	}

	resources := []struct {
		path string
		res  resourceRoutes
	}{
		{"/professors", ctrl.Professors},
		{"/administrators", ctrl.Administrators},
		{"/courses", ctrl.Courses},
		{"/exams", ctrl.Exams},
		{"/grades", ctrl.Grades},
	}
	for _, r := range resources {
		mountResource(authenticated, authMiddleware, r.path, r.res)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}

// resourceRoutes is the handler set shared by every plain resource.
type resourceRoutes interface {
	List(*gin.Context)
	Get(*gin.Context)
	Count(*gin.Context)
	Create(*gin.Context)
	CreateMany(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func mountResource(group *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware, path string, res resourceRoutes) {
	resource := group.Group(path)

	read := resource.Group("")
	read.Use(authMiddleware.RoleRequired(readRoles...))
	{
		read.GET("", res.List)
		read.GET("/count", res.Count)
		read.GET("/:id", res.Get)
	}

	staff := resource.Group("")
	staff.Use(authMiddleware.RoleRequired(staffRoles...))
	{
		staff.POST("", res.Create)
		staff.POST("/batch", res.CreateMany)
		staff.PUT("/:id", res.Update)
		staff.DELETE("/:id", res.Delete)
	}
}
