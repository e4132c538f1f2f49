package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/salonhub/SH-BookingService/internal/config"
	"github.com/salonhub/SH-BookingService/internal/domain"
	agendaRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/agenda"
	appointmentRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/catalog"
	customerRepo "github.com/salonhub/SH-BookingService/internal/infra/storage/customer"
	"github.com/salonhub/SH-BookingService/pkg/logger"
	"github.com/salonhub/SH-BookingService/pkg/ptr"
)

// Наполняет базу тестовыми данными для локальной разработки.
// Бизнесы (ID 1..N) должны существовать в BusinessService отдельно.
func main() {
	configPath := flag.String("config", "config.toml", "путь к конфигурации")
	businesses := flag.Int("businesses", 3, "количество бизнесов")
	days := flag.Int("days", 7, "горизонт записей в днях")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx := context.Background()
	agendaRepository := agendaRepo.NewRepository(db)
	serviceRepository := catalogRepo.NewServiceRepository(db)
	stylistRepository := catalogRepo.NewStylistRepository(db)
	customerRepository := customerRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db)

	faker := gofakeit.New(0)

	serviceNames := []string{
		"Женская стрижка", "Мужская стрижка", "Окрашивание", "Укладка",
		"Маникюр", "Педикюр", "Массаж лица", "Оформление бровей",
	}
	granularities := []int{15, 30, 45, 60}

	for businessID := int64(1); businessID <= int64(*businesses); businessID++ {
		log.Info("Seeding business %d...", businessID)

		granularity := granularities[faker.Number(0, len(granularities)-1)]
		settings, err := agendaRepository.Create(ctx, &domain.AgendaSettings{
			BusinessID:      businessID,
			StartHour:       "09:00",
			EndHour:         "19:00",
			ServiceDuration: granularity,
			WorkingDays:     []int64{1, 2, 3, 4, 5, 6}, // воскресенье выходной
		})
		if err != nil {
			log.Fatal("Failed to create agenda settings for business %d: %v", businessID, err)
		}

		var services []*domain.Service
		for i := 0; i < 4; i++ {
			svc, err := serviceRepository.Create(ctx, &domain.Service{
				BusinessID:      businessID,
				Name:            serviceNames[faker.Number(0, len(serviceNames)-1)],
				DurationMinutes: granularity * faker.Number(1, 3),
				Color:           faker.HexColor(),
				Price:           ptr.Ptr(float64(faker.Number(500, 5000))),
				Active:          true,
			})
			if err != nil {
				log.Fatal("Failed to create service for business %d: %v", businessID, err)
			}
			services = append(services, svc)
		}

		var stylists []*domain.Stylist
		for i := 0; i < 3; i++ {
			st, err := stylistRepository.Create(ctx, &domain.Stylist{
				BusinessID: businessID,
				Name:       faker.Name(),
				Public:     true,
				Status:     domain.StylistAvailable,
			})
			if err != nil {
				log.Fatal("Failed to create stylist for business %d: %v", businessID, err)
			}
			stylists = append(stylists, st)
		}

		var customers []*domain.Customer
		for i := 0; i < 10; i++ {
			c, err := customerRepository.Create(ctx, &domain.Customer{
				BusinessID: businessID,
				Name:       faker.Name(),
				Email:      ptr.Ptr(faker.Email()),
				Phone:      ptr.Ptr(faker.Phone()),
			})
			if err != nil {
				log.Fatal("Failed to create customer for business %d: %v", businessID, err)
			}
			customers = append(customers, c)
		}

		// Записи раскладываются по сетке без пересечений: каждому мастеру
		// достаётся своя последовательность слотов
		grid := domain.GenerateSlots(settings)
		created := 0
		for day := 0; day < *days; day++ {
			date := time.Now().AddDate(0, 0, day)
			if !settings.IsWorkingDay(date) {
				continue
			}
			for _, stylist := range stylists {
				slotIdx := faker.Number(0, len(grid)/2)
				for i := 0; i < faker.Number(1, 3); i++ {
					svc := services[faker.Number(0, len(services)-1)]
					needed := domain.SlotsNeeded(svc.DurationMinutes, settings.Granularity())
					if slotIdx+needed > len(grid) {
						break
					}

					_, err := appointmentRepository.Create(ctx, &domain.Appointment{
						BusinessID:      businessID,
						CustomerID:      customers[faker.Number(0, len(customers)-1)].ID,
						ServiceID:       svc.ID,
						StylistID:       &stylist.ID,
						Reference:       uuid.NewString(),
						Date:            date,
						StartTime:       grid[slotIdx],
						DurationMinutes: svc.DurationMinutes,
						Status:          domain.StatusScheduled,
						ServiceName:     svc.Name,
						Price:           svc.Price,
					})
					if err != nil {
						log.Fatal("Failed to create appointment for business %d: %v", businessID, err)
					}
					created++
					slotIdx += needed + faker.Number(0, 2)
				}
			}
		}

		log.Info("Business %d seeded: %d services, %d stylists, %d customers, %d appointments",
			businessID, len(services), len(stylists), len(customers), created)
	}

	log.Info("Seeding complete")
}
