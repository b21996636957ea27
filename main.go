package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hisab-app/hisab-server/controller"
	"github.com/hisab-app/hisab-server/database"
	"github.com/hisab-app/hisab-server/net"
	"github.com/hisab-app/hisab-server/notification"
	"github.com/hisab-app/hisab-server/repository"
	"github.com/hisab-app/hisab-server/utils"
	"k8s.io/klog/v2"
)

var Version = "dev"

// Registrations the app hasn't refreshed in this long are considered dead
const staleTokenMaxAge = 180 * 24 * time.Hour

func usage() {
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	// Server options
	flag.Usage = usage
	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	flag.Set("stderrthreshold", "INFO")
	flag.Set("v", "3")
	sweepInvites := flag.Bool("sweep-invites", false, "Delete expired invite links and exit")
	pruneTokens := flag.Bool("prune-device-tokens", false, "Delete stale device tokens and exit")
	version := flag.Bool("version", false, "Display the version")
	flag.Parse()

	if *version {
		fmt.Printf("Hisab server version: %s\n", Version)
		os.Exit(0)
	}

	// Setup database conn
	config := &database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		Password: os.Getenv("DB_PASS"),
		User:     os.Getenv("DB_USER"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
		DBName:   os.Getenv("DB_NAME"),
	}
	fmt.Println("🏡 Connecting to database...")
	db, err := database.NewConnection(config)
	if err != nil {
		panic(err)
	}

	fmt.Println("🦋 Running database migrations...")
	database.Migrate(db)

	// Create repositories
	deviceTokenRepo := &repository.DeviceTokenRepo{DB: db}
	groupMemberRepo := &repository.GroupMemberRepo{DB: db}
	inviteRepo := &repository.InviteRepo{DB: db}
	telemetryRepo := &repository.TelemetryRepo{DB: db}
	groupRepo := &repository.GroupRepo{DB: db}
	participantRepo := &repository.ParticipantRepo{DB: db}
	expenseRepo := &repository.ExpenseRepo{DB: db}
	expenseTagRepo := &repository.ExpenseTagRepo{DB: db}

	// Maintenance jobs, runnable as one-shots for cron-style deployments
	if *sweepInvites {
		n, err := inviteRepo.DeleteExpired()
		if err != nil {
			klog.Errorf("Error sweeping expired invites: %v", err)
			os.Exit(1)
		}
		klog.Infof("Swept %d expired invites", n)
		os.Exit(0)
	} else if *pruneTokens {
		n, err := deviceTokenRepo.PruneStale(staleTokenMaxAge)
		if err != nil {
			klog.Errorf("Error pruning stale device tokens: %v", err)
			os.Exit(1)
		}
		klog.Infof("Pruned %d stale device tokens", n)
		os.Exit(0)
	}

	// FCM credentials, either inline JSON or a mounted key file
	serviceAccountKey := utils.GetEnv("FCM_SERVICE_ACCOUNT_KEY", "")
	if serviceAccountKey == "" {
		if keyFile := utils.GetEnv("FCM_SERVICE_ACCOUNT_KEY_FILE", ""); keyFile != "" {
			raw, err := os.ReadFile(keyFile)
			if err != nil {
				klog.Errorf("Error reading FCM service account key file: %v", err)
				os.Exit(1)
			}
			serviceAccountKey = string(raw)
		}
	}
	var credentials controller.AccessTokenProvider
	if serviceAccountKey != "" {
		credentials = &net.FCMCredentialProvider{ServiceAccountKey: []byte(serviceAccountKey)}
	} else {
		klog.Warning("FCM service account key not set, push notifications are disabled")
	}
	fcmProjectID := utils.GetEnv("FCM_PROJECT_ID", "")
	fcmClient := &net.FCMClient{ProjectID: fcmProjectID}

	// Setup controllers
	nc := &controller.NotificationController{
		ServiceRoleSecret: utils.GetEnv("SERVICE_ROLE_SECRET", ""),
		FCMProjectID:      fcmProjectID,
		Members:           groupMemberRepo,
		Tokens:            deviceTokenRepo,
		Credentials:       credentials,
		Dispatcher: &notification.Dispatcher{
			FCM:    fcmClient,
			Tokens: deviceTokenRepo,
		},
	}
	ic := &controller.InviteController{
		Invites: inviteRepo,
		SiteUrl: utils.GetEnv("SITE_URL", "https://hisab-c8eb1.web.app"),
		BaseUrl: utils.GetEnv("BASE_URL", "http://localhost:3000"),
	}
	tc := &controller.TelemetryController{Telemetry: telemetryRepo}
	gc := &controller.GroupsController{GroupRepo: groupRepo, MemberRepo: groupMemberRepo, InviteRepo: inviteRepo}
	pc := &controller.ParticipantsController{ParticipantRepo: participantRepo}
	ec := &controller.ExpensesController{ExpenseRepo: expenseRepo}
	etc := &controller.ExpenseTagsController{ExpenseTagRepo: expenseTagRepo}
	dc := &controller.DevicesController{DeviceTokenRepo: deviceTokenRepo}

	// Create app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			klog.Errorf("Error serving %s: %v", c.Path(), err)
			return c.Status(code).JSON(&controller.ErrorResponse{Error: err.Error()})
		},
	})

	// Panic recovery middleware
	app.Use(recover.New())
	// Cors middleware
	app.Use(cors.New())
	// Pprof
	app.Use(pprof.New())

	// Edge routes. These check the method themselves so that a bad verb gets
	// a 405 instead of fiber's default 404.
	app.All("/send-notification", nc.HandleSendNotification)
	app.All("/telemetry", tc.HandleIngest)
	app.Get("/invite-redirect", ic.HandleInviteRedirect)
	app.Get("/invite", ic.HandleInvitePage)
	app.Get("/og-invite-image", ic.HandleOgInviteImage)

	// App API routes
	api := app.Group("/api")
	api.Get("/groups", gc.HandleList)
	api.Post("/groups", gc.HandleCreate)
	api.Get("/groups/:id", gc.HandleGet)
	api.Put("/groups/:id", gc.HandleUpdate)
	api.Delete("/groups/:id", gc.HandleDelete)
	api.Post("/groups/:id/freeze-settlement", gc.HandleFreezeSettlement)
	api.Post("/groups/:id/unfreeze-settlement", gc.HandleUnfreezeSettlement)
	api.Post("/groups/:id/members", gc.HandleAddMember)
	api.Post("/groups/:id/invites", gc.HandleCreateInvite)
	api.Get("/groups/:id/participants", pc.HandleListByGroup)
	api.Get("/groups/:id/expenses", ec.HandleListByGroup)
	api.Get("/groups/:id/expense-tags", etc.HandleListByGroup)
	api.Get("/participants/:id", pc.HandleGet)
	api.Post("/participants", pc.HandleCreate)
	api.Put("/participants/:id", pc.HandleUpdate)
	api.Delete("/participants/:id", pc.HandleDelete)
	api.Get("/expenses/:id", ec.HandleGet)
	api.Post("/expenses", ec.HandleCreate)
	api.Put("/expenses/:id", ec.HandleUpdate)
	api.Delete("/expenses/:id", ec.HandleDelete)
	api.Get("/expense-tags/:id", etc.HandleGet)
	api.Post("/expense-tags", etc.HandleCreate)
	api.Put("/expense-tags/:id", etc.HandleUpdate)
	api.Delete("/expense-tags/:id", etc.HandleDelete)
	api.Post("/device-tokens", dc.HandleUpdateDeviceToken)

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.SendStatus(404)
	})

	// Background maintenance
	s := gocron.NewScheduler(time.UTC)

	s.Every(1).Hour().Do(func() {
		n, err := inviteRepo.DeleteExpired()
		if err != nil {
			klog.Errorf("Error sweeping expired invites: %v", err)
			return
		}
		if n > 0 {
			klog.V(3).Infof("Swept %d expired invites", n)
		}
	})

	s.Every(24).Hours().Do(func() {
		n, err := deviceTokenRepo.PruneStale(staleTokenMaxAge)
		if err != nil {
			klog.Errorf("Error pruning stale device tokens: %v", err)
			return
		}
		if n > 0 {
			klog.V(3).Infof("Pruned %d stale device tokens", n)
		}
	})

	s.StartAsync()

	err = app.Listen(fmt.Sprintf(":%s", utils.GetEnv("PORT", "3000")))
	if err != nil {
		panic(err)
	}
}
