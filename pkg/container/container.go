package container

import (
	"context"
	"fmt"
	"time"

	"library-catalog-backend/internal/config"
	"library-catalog-backend/internal/infrastructure/database"
	"library-catalog-backend/pkg/jwt"
	"library-catalog-backend/pkg/logger"

	"library-catalog-backend/internal/domains/author"
	authorHandler "library-catalog-backend/internal/domains/author/handler"
	authorRepo "library-catalog-backend/internal/domains/author/repository"
	authorService "library-catalog-backend/internal/domains/author/service"

	"library-catalog-backend/internal/domains/book"
	bookHandler "library-catalog-backend/internal/domains/book/handler"
	bookRepo "library-catalog-backend/internal/domains/book/repository"
	bookService "library-catalog-backend/internal/domains/book/service"

	"library-catalog-backend/internal/domains/maintenance"
	maintenanceHandler "library-catalog-backend/internal/domains/maintenance/handler"
	maintenanceRepo "library-catalog-backend/internal/domains/maintenance/repository"

	"library-catalog-backend/internal/domains/user"
	userHandler "library-catalog-backend/internal/domains/user/handler"
	userRepo "library-catalog-backend/internal/domains/user/repository"
	userService "library-catalog-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root of
// the dependency graph; everything in it is a singleton for the process
// lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.SQLiteDB
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	UserRepo        user.Repository
	AuthorRepo      author.Repository
	BookRepo        book.Repository
	MaintenanceRepo maintenance.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	UserService   user.Service
	AuthorService author.Service
	BookService   book.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UserHandler        *userHandler.UserHandler
	AuthorHandler      *authorHandler.AuthorHandler
	BookHandler        *bookHandler.BookHandler
	MaintenanceHandler *maintenanceHandler.MaintenanceHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// New builds the whole dependency graph from an already-loaded config.
// Taking the config as a parameter keeps tests free to point it at an
// in-memory database.
//
// Initialization order matters:
// 1. Infrastructure (DB, JWT) from config
// 2. Repositories on top of infrastructure
// 3. Services on top of repositories
// 4. Handlers on top of services
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INFRASTRUCTURE
	// ========================================
	db := database.NewSQLiteDB(&database.DBConfig{
		Path:        cfg.Database.Path,
		BusyTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	c.DB = db

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 2: REPOSITORIES
	// ========================================
	c.UserRepo = userRepo.NewSQLiteRepository(db.DB)
	c.AuthorRepo = authorRepo.NewSQLiteRepository(db.DB)
	c.BookRepo = bookRepo.NewSQLiteRepository(db.DB)
	c.MaintenanceRepo = maintenanceRepo.NewSQLiteRepository(db.DB)

	// ========================================
	// STEP 3: SERVICES
	// ========================================
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	// The book service resolves author references through the author repo.
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)

	// ========================================
	// STEP 4: HANDLERS
	// ========================================
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.MaintenanceHandler = maintenanceHandler.NewMaintenanceHandler(c.MaintenanceRepo)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"database":    cfg.Database.Path,
	})

	return c, nil
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases held resources. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}
}
