package cmd

import (
	"log/slog"

	httpin "waterdrop/internal/adapters/in/http"
	"waterdrop/internal/adapters/out/notification"
	"waterdrop/internal/adapters/out/payment"
	"waterdrop/internal/adapters/out/postgres"
	"waterdrop/internal/adapters/out/realtime"
	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/application/usecases/queries"
	"waterdrop/internal/core/ports"
	"waterdrop/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use case handlers. All handlers share the
// same unit of work factory; each gets it through the narrowest interface it
// declares.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	notifier    ports.Notifier
	broadcaster ports.Broadcaster
	payments    ports.PaymentProvider
	logger      *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration and the
// already-open infrastructure clients.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) (CompositionRoot, error) {
	notifier, err := notification.NewPushClient(config.PushEndpoint, config.PushAPIKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	payments, err := payment.NewProvider(config.PaymentSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:    notifier,
		broadcaster: realtime.NewRedisBroadcaster(redisClient),
		payments:    payments,
		logger:      logger,
	}, nil
}

// PaymentProvider exposes the payment adapter for edge verification.
func (c *CompositionRoot) PaymentProvider() ports.PaymentProvider {
	return c.payments
}

// CreateHandlers bundles every use case handler for the HTTP server.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterUser:       c.CreateRegisterUserCommandHandler(),
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		AttachRating:       c.CreateAttachRatingCommandHandler(),
		AcceptOrder:        c.CreateAcceptOrderCommandHandler(),
		AssignPartner:      c.CreateAssignPartnerCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		ToggleAvailability: c.CreateToggleAvailabilityCommandHandler(),
		UpdateLocation:     c.CreateUpdatePartnerLocationCommandHandler(),
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		UpdateProduct:      c.CreateUpdateProductCommandHandler(),
		CreateCoupon:       c.CreateCreateCouponCommandHandler(),
		ToggleCoupon:       c.CreateToggleCouponCommandHandler(),
		CreatePayout:       c.CreateCreatePayoutCommandHandler(),
		ProcessPayout:      c.CreateProcessPayoutCommandHandler(),

		GetProducts:        queries.NewGetProductsQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		GetCustomerOrders:  queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		GetAvailableOrders: queries.NewGetAvailableOrdersQueryHandler(c.gormDB),
		GetPartnerOrders:   queries.NewGetPartnerOrdersQueryHandler(c.gormDB),
		GetPartnerEarnings: queries.NewGetPartnerEarningsQueryHandler(c.gormDB),
		GetPartners:        queries.NewGetPartnersQueryHandler(c.gormDB),
		GetCoupons:         queries.NewGetCouponsQueryHandler(c.gormDB),
		GetDashboard:       queries.NewGetDashboardQueryHandler(c.gormDB),
		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
	}
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignNextOrderCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.payments, c.logger)
}

func (c *CompositionRoot) CreateAttachRatingCommandHandler() commands.AttachRatingCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignNextOrderCommandHandler() commands.AssignNextOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignNextOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.notifier, c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateToggleAvailabilityCommandHandler() commands.ToggleAvailabilityCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerLocationCommandHandler() commands.UpdatePartnerLocationCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCouponCommandHandler() commands.CreateCouponCommandHandler {
	var f commands.CouponUoWFactory = FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCouponCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleCouponCommandHandler() commands.ToggleCouponCommandHandler {
	var f commands.CouponUoWFactory = FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleCouponCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePayoutCommandHandler() commands.CreatePayoutCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePayoutCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessPayoutCommandHandler() commands.ProcessPayoutCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPayoutCommandHandler(f)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCouponUoWFactory func() commands.CouponUoW

func (f FuncCouponUoWFactory) Create() commands.CouponUoW {
	return f()
}

type FuncPayoutUoWFactory func() commands.PayoutUoW

func (f FuncPayoutUoWFactory) Create() commands.PayoutUoW {
	return f()
}
