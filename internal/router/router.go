package router

import (
	"time"

	"github.com/krilinxito/taqueando2.0/internal/config"
	"github.com/krilinxito/taqueando2.0/internal/handler"
	"github.com/krilinxito/taqueando2.0/internal/infra"
	"github.com/krilinxito/taqueando2.0/internal/middleware"
	"github.com/krilinxito/taqueando2.0/internal/repository"
	"github.com/krilinxito/taqueando2.0/internal/service"
	"github.com/krilinxito/taqueando2.0/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	loc := cfg.Location()

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db, loc)
	contieneRepo := repository.NewContieneRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	arqueoRepo := repository.NewArqueoRepository(db)
	estadisticaRepo := repository.NewEstadisticaRepository(db, cfg.Timezone)
	userLogRepo := repository.NewUserLogRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg, dispatcher)
	productoSvc := service.NewProductoService(productoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, loc)
	contieneSvc := service.NewContieneService(contieneRepo)
	pagoSvc := service.NewPagoService(pagoRepo)
	cajaSvc := service.NewCajaService(cajaRepo, loc)
	arqueoSvc := service.NewArqueoService(arqueoRepo, cajaSvc, loc)
	estadisticaSvc := service.NewEstadisticaService(estadisticaRepo, loc, log.Logger)
	userLogSvc := service.NewUserLogService(userLogRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	contieneH := handler.NewContieneHandler(contieneSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	arqueosH := handler.NewArqueosHandler(arqueoSvc)
	estadisticasH := handler.NewEstadisticasHandler(estadisticaSvc)
	logsH := handler.NewLogsHandler(userLogSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	tokenCache := infra.NewTokenCache(rdb, time.Duration(cfg.TokenCacheTTLMinutes)*time.Minute)
	protegido := r.Group("/", middleware.JWTAuth(cfg.JWTSecret, tokenCache))
	{
		protegido.GET("/auth/perfil", authH.Perfil)

		protegido.POST("/pedidos", pedidosH.Crear)
		protegido.GET("/pedidos", pedidosH.Listar)
		protegido.GET("/pedidos/pedidos-dia", pedidosH.PedidosDelDia)
		protegido.GET("/pedidos/:id", pedidosH.Obtener)
		protegido.PUT("/pedidos/:id", pedidosH.Renombrar)
		protegido.DELETE("/pedidos/:id", pedidosH.Eliminar)

		protegido.GET("/productos", productosH.Listar)
		protegido.GET("/productos/:id", productosH.Obtener)

		protegido.POST("/contiene/agregar", contieneH.Agregar)
		protegido.PUT("/contiene/anular/:id", contieneH.Anular)
		protegido.GET("/contiene/pedido/:id_pedido", contieneH.PorPedido)

		protegido.POST("/pagos", pagosH.Registrar)
		protegido.GET("/pagos/:id_pedido", pagosH.PorPedido)

		protegido.GET("/caja/resumen", cajaH.Resumen)
		protegido.GET("/caja/resumen/fecha", cajaH.ResumenPorFecha)

		protegido.POST("/arqueos", arqueosH.Crear)
		protegido.GET("/arqueos/fecha", arqueosH.PorFecha)
		protegido.GET("/arqueos/ultimo", arqueosH.Ultimo)

		admin := protegido.Group("/", middleware.RequireRole("admin"))
		{
			admin.POST("/productos", productosH.Crear)
			admin.PUT("/productos/:id", productosH.Actualizar)
			admin.DELETE("/productos/:id", productosH.Eliminar)

			admin.GET("/estadisticas", estadisticasH.Dashboard)
			admin.GET("/estadisticas/ingresos-historicos", estadisticasH.IngresosHistoricos)

			admin.POST("/usuarios", authH.CrearUsuario)
			admin.GET("/usuarios", authH.ListarUsuarios)
			admin.PUT("/usuarios/:id", authH.ActualizarUsuario)
			admin.DELETE("/usuarios/:id", authH.DesactivarUsuario)

			admin.GET("/logs", logsH.Recientes)
		}
	}

	return r
}
