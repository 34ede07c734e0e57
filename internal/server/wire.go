package server

import (
	"go.mongodb.org/mongo-driver/mongo"

	"staffhub/internal/config"
	"staffhub/internal/handler"
	"staffhub/internal/repository"
	"staffhub/internal/service"
)

// Repositories bundles the persistence layer
type Repositories struct {
	User        repository.IUserRepository
	Leave       repository.ILeaveRepository
	Reset       repository.IPasswordResetRepository
	Departments repository.IDepartmentRepository
	Roles       repository.IRoleRepository
}

// Services bundles the business layer
type Services struct {
	User  *service.UserService
	Leave *service.LeaveService
	Auth  *service.AuthService
}

// Handlers bundles the HTTP layer
type Handlers struct {
	User      *handler.UserHandler
	Leave     *handler.LeaveHandler
	Auth      *handler.AuthHandler
	Directory *handler.DirectoryHandler
}

// InitRepositories constructs all repositories
func InitRepositories(cfg *config.Config, db *mongo.Database) *Repositories {
	refNo := repository.NewRefNoGenerator(db, "leaveRefNo", "LVE")
	return &Repositories{
		User:        repository.NewUserRepository(cfg, db),
		Leave:       repository.NewLeaveRepository(cfg, db, refNo),
		Reset:       repository.NewPasswordResetRepository(cfg, db),
		Departments: repository.NewDepartmentRepository(cfg, db),
		Roles:       repository.NewRoleRepository(cfg, db),
	}
}

// InitServices constructs all services
func InitServices(cfg *config.Config, repos *Repositories) *Services {
	return &Services{
		User:  service.NewUserService(cfg, repos.User),
		Leave: service.NewLeaveService(cfg, repos.Leave),
		Auth:  service.NewAuthService(cfg, repos.User, repos.Reset),
	}
}

// InitHandlers constructs all handlers
func InitHandlers(services *Services, repos *Repositories) *Handlers {
	return &Handlers{
		User:      handler.NewUserHandler(services.User),
		Leave:     handler.NewLeaveHandler(services.Leave),
		Auth:      handler.NewAuthHandler(services.Auth),
		Directory: handler.NewDirectoryHandler(repos.Departments, repos.Roles),
	}
}
