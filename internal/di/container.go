package di

import (
	"fmt"
	"time"

	"portfolio/internal/adapter/web"
	"portfolio/internal/application/port/input"
	"portfolio/internal/application/port/output"
	"portfolio/internal/client"
	"portfolio/internal/infrastructure/i18n"
	"portfolio/internal/infrastructure/images"
	"portfolio/internal/infrastructure/logger"
	"portfolio/internal/infrastructure/mail"
	"portfolio/internal/infrastructure/pdf"
	"portfolio/internal/usecase/contact"
	"portfolio/internal/usecase/resume"
	"portfolio/internal/worker"
)

type Container struct {
	Logger   output.LoggerPort
	Compute  input.ComputeService
	Renderer output.Renderer
	Mailer   output.Mailer
	Server   *web.Server

	workerClient *client.Client
}

type Config struct {
	Addr    string
	BaseURL string
	Debug   bool

	TaskTimeout    time.Duration
	HealthInterval time.Duration

	RendererHeadless bool
	RendererTimeout  time.Duration

	SMTP mail.Config
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewZapAdapter(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	clientOpts := []client.Option{}
	if cfg.TaskTimeout > 0 {
		clientOpts = append(clientOpts, client.WithTimeout(cfg.TaskTimeout))
	}
	if cfg.HealthInterval > 0 {
		workerCfg := worker.DefaultConfig()
		workerCfg.HealthInterval = cfg.HealthInterval
		clientOpts = append(clientOpts, client.WithWorkerConfig(workerCfg))
	}
	compute := client.New(log.WithField("component", "worker"), clientOpts...)

	rendererCfg := pdf.DefaultConfig()
	rendererCfg.Headless = cfg.RendererHeadless
	if cfg.RendererTimeout > 0 {
		rendererCfg.Timeout = cfg.RendererTimeout
	}
	renderer, err := pdf.NewRodRenderer(rendererCfg)
	if err != nil {
		compute.Stop()
		_ = log.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	translator := i18n.Default()
	mailer := mail.NewSMTPMailer(cfg.SMTP, translator, log.WithField("component", "mail"))

	contactUC := contact.New(compute, mailer, log.WithField("component", "contact"))
	resumeUC := resume.New(resume.Config{BaseURL: cfg.BaseURL}, renderer, translator, log.WithField("component", "resume"))
	placeholders := images.NewPlaceholderService()

	server := web.NewServer(
		web.Config{Addr: cfg.Addr},
		contactUC,
		resumeUC,
		placeholders,
		compute,
		log.WithField("component", "http"),
	)

	return &Container{
		Logger:       log,
		Compute:      compute,
		Renderer:     renderer,
		Mailer:       mailer,
		Server:       server,
		workerClient: compute,
	}, nil
}

func (c *Container) Close() {
	if c.workerClient != nil {
		c.workerClient.Stop()
	}
	if c.Renderer != nil {
		_ = c.Renderer.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
}
