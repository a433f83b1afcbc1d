package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/fsdevblog/tubecash/internal/config"
	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/internal/repository/pgrepo"
	"github.com/fsdevblog/tubecash/internal/repository/repoargs"
	"github.com/fsdevblog/tubecash/internal/service"
	"github.com/fsdevblog/tubecash/internal/service/psswd"
	"github.com/fsdevblog/tubecash/internal/transport/api"
	"github.com/fsdevblog/tubecash/internal/transport/events"
	"github.com/fsdevblog/tubecash/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	publisher, pubErr := a.initPublisher()
	if pubErr != nil {
		return fmt.Errorf("app run: %s", pubErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:       []byte(a.Config.JWTUserSecret),
		Hasher:          psswd.PasswordHash(""),
		Publisher:       publisher,
		DepositAccounts: depositAccounts(a.Config.DepositAccounts),
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		AccountService: services.AccountService,
		WalletService:  services.WalletService,
		PlanService:    services.PlanService,
		JWTSecretKey:   []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initPublisher подключает фид сеттлмента. Без AMQP_URL сервис работает
// автономно: заявки пишутся в леджер, фид не отправляется.
func (a *App) initPublisher() (service.SettlementPublisher, error) {
	if a.Config.AMQPURL == "" {
		a.Logger.Warn("AMQP URL is not set, settlement feed is disabled")
		return events.NopPublisher{}, nil
	}
	publisher, err := events.NewAMQPPublisher(a.Config.AMQPURL, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("init publisher: %s", err.Error())
	}
	return publisher, nil
}

func depositAccounts(raw map[string]string) service.DepositAccounts {
	accounts := make(service.DepositAccounts, len(raw))
	for method, account := range raw {
		accounts[domain.PaymentMethod(method)] = account
	}
	return accounts
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// account repo
	accountRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewAccountRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.AccountRepoName), accountRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// transaction repo
	transactionRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewTransactionRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.TransactionRepoName),
		transactionRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// plan repo
	planRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewPlanRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.PlanRepoName), planRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
