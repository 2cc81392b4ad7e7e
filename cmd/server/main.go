package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/wamalwa/event-ticketing-registry/internal/config"
	"github.com/wamalwa/event-ticketing-registry/internal/database"
	"github.com/wamalwa/event-ticketing-registry/internal/handler"
	"github.com/wamalwa/event-ticketing-registry/internal/middleware"
	"github.com/wamalwa/event-ticketing-registry/internal/model"
	"github.com/wamalwa/event-ticketing-registry/internal/queue"
	"github.com/wamalwa/event-ticketing-registry/internal/router"
	"github.com/wamalwa/event-ticketing-registry/internal/service"
	"github.com/wamalwa/event-ticketing-registry/internal/store"
)

func main() {
	// .env is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	events := store.NewSQLStore[model.Event](db, database.TableEvents)
	tickets := store.NewSQLStore[model.Ticket](db, database.TableTickets)
	users := store.NewSQLStore[model.User](db, database.TableUsers)
	members := store.NewSQLStore[model.Member](db, database.TableMembers)
	contributions := store.NewSQLStore[model.Contribution](db, database.TableContributions)
	investments := store.NewSQLStore[model.Investment](db, database.TableInvestments)
	groups := store.NewSQLStore[model.Group](db, database.TableGroups)
	runner := &store.SQLRunner{DB: db}

	eventSvc := service.NewEventService(events)
	userSvc := service.NewUserService(users)
	ticketSvc := service.NewTicketService(tickets, events, users, runner)
	memberSvc := service.NewMemberService(members)
	contributionSvc := service.NewContributionService(contributions, members)
	investmentSvc := service.NewInvestmentService(investments)
	groupSvc := service.NewGroupService(groups)

	var publisher handler.TicketPublisher
	if cfg.AMQPURL != "" {
		pub, err := queue.NewPublisher(cfg.AMQPURL)
		if err != nil {
			log.Printf("queue unavailable, ticket events disabled: %v", err)
		} else {
			defer pub.Close()
			publisher = pub
		}
		if cfg.ConsumerOn {
			go queue.StartTicketConsumer(context.Background(), cfg.AMQPURL, cfg.LogDir)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.CallerPrincipal(cfg.JWTSecret))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.Register(e, router.Handlers{
		Health:       handler.NewHealthHandler(db),
		Auth:         handler.NewAuthHandler(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute),
		Event:        handler.NewEventHandler(eventSvc),
		Ticket:       handler.NewTicketHandler(ticketSvc, publisher),
		User:         handler.NewUserHandler(userSvc, ticketSvc),
		Member:       handler.NewMemberHandler(memberSvc, contributionSvc),
		Contribution: handler.NewContributionHandler(contributionSvc),
		Investment:   handler.NewInvestmentHandler(investmentSvc),
		Group:        handler.NewGroupHandler(groupSvc),
	})

	log.Printf("listening on :%s (env=%s)", cfg.Port, cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
