package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/engine/availability"
	"github.com/m04kA/SC-AppointmentService/internal/engine/bookingform"
	"github.com/m04kA/SC-AppointmentService/internal/engine/selection"
	"github.com/m04kA/SC-AppointmentService/internal/engine/slotvalidator"
	"github.com/m04kA/SC-AppointmentService/internal/engine/submission"
	"github.com/m04kA/SC-AppointmentService/internal/integrations/appointmentapi"
	"github.com/m04kA/SC-AppointmentService/internal/policy"
	"github.com/m04kA/SC-AppointmentService/pkg/logger"
)

// consolePresenter печатает директивы контроллера отправки в терминал
type consolePresenter struct{}

func (consolePresenter) SubmissionStarted() {
	fmt.Println("Submitting booking...")
}

func (consolePresenter) SubmissionSucceeded(redirect string) {
	fmt.Printf("Booking confirmed, redirecting to %s\n", redirect)
}

func (consolePresenter) SubmissionFailed(message string) {
	fmt.Printf("Booking failed: %s\n", message)
}

func main() {
	var (
		apiURL    = flag.String("api", "http://localhost:8080", "backend API base URL")
		name      = flag.String("name", "", "client name")
		email     = flag.String("email", "", "client email")
		serviceID = flag.Int64("service", 0, "service id (omit to list services)")
		start     = flag.String("start", "", "slot start time, RFC3339")
		timeout   = flag.Duration("timeout", 10*time.Second, "request timeout")
	)
	flag.Parse()

	log, err := logger.New("", "warn")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx := context.Background()
	client := appointmentapi.NewClient(*apiURL, *timeout, log)

	// Каталог услуг: без -service просто показываем его и выходим
	services, err := client.GetServices(ctx)
	if err != nil {
		fmt.Printf("Failed to load services: %v\n", err)
		os.Exit(1)
	}
	if *serviceID == 0 {
		fmt.Println("Available services:")
		for _, svc := range services {
			fmt.Printf("  %d  %-24s $%.2f  %d min\n", svc.ID, svc.Name, svc.Price, svc.DurationMinutes)
		}
		return
	}

	var chosen *appointmentapi.ServiceItem
	for i := range services {
		if services[i].ID == *serviceID {
			chosen = &services[i]
			break
		}
	}
	if chosen == nil {
		fmt.Printf("Unknown service id %d\n", *serviceID)
		os.Exit(1)
	}

	startTime, err := time.Parse(time.RFC3339, *start)
	if err != nil {
		fmt.Printf("Invalid -start value %q: expected RFC3339\n", *start)
		os.Exit(1)
	}

	// Политика по умолчанию совпадает с серверной конфигурацией
	bookingPolicy, err := policy.New(policy.DefaultConfig())
	if err != nil {
		fmt.Printf("Invalid booking policy: %v\n", err)
		os.Exit(1)
	}

	// Занятые интервалы вокруг выбранного дня
	source := availability.NewSource(client, log)
	if err := source.Refresh(ctx, startTime.AddDate(0, 0, -1), startTime.AddDate(0, 0, 1)); err != nil {
		fmt.Printf("Failed to load booked slots: %v\n", err)
		os.Exit(1)
	}

	// Выбор слота: кандидат проходит полную цепочку проверок
	state := selection.NewState(slotvalidator.New(bookingPolicy))
	state.Subscribe(selection.ListenerFunc(func(sel *domain.Selection) {
		if sel != nil {
			fmt.Printf("Selected slot %s - %s\n",
				sel.Start.Format("2006-01-02 15:04"), sel.End.Format("15:04"))
		}
	}))

	candidate := domain.Interval{
		Start: startTime,
		End:   startTime.Add(time.Duration(chosen.DurationMinutes) * time.Minute),
	}
	if _, err := state.Select(candidate, time.Now(), source.Booked()); err != nil {
		fmt.Printf("Slot rejected: %v\n", err)
		os.Exit(1)
	}

	// Отправка формы через полный жизненный цикл контроллера
	controller := submission.NewController(
		bookingform.New(),
		client,
		state,
		consolePresenter{},
		log,
	)

	form := &domain.BookingForm{
		ClientName:  *name,
		ClientEmail: *email,
		Service:     strconv.FormatInt(*serviceID, 10),
		Selection:   state.Current(),
	}

	redirect, err := controller.Submit(ctx, form)
	if err != nil {
		os.Exit(1)
	}
	fmt.Println(redirect)
}
