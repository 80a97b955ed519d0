package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ofd_import/internal/config"
	"ofd_import/internal/ofd"
	"ofd_import/internal/source"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type Runner struct {
	config    config.Config
	options   Options
	logger    *zap.Logger
	retriever *source.Retriever
}

func NewRunner(cfg config.Config, logger *zap.Logger, retriever *source.Retriever) *Runner {
	logger = logger.Named("cli")
	opts := Options{
		APIKey:        cfg.APIKey,
		TaxID:         cfg.TaxID,
		DeviceID:      cfg.DeviceID,
		StorageSerial: cfg.StorageSerial,
		From:          cfg.From,
		To:            cfg.To,
		BaseURL:       cfg.BaseURL,
		Debug:         cfg.Debug,
		LogFile:       cfg.LogFile,
		Timeout:       cfg.Timeout,
	}

	return &Runner{
		config:    cfg,
		options:   opts,
		logger:    logger,
		retriever: retriever,
	}
}

func (r *Runner) Execute() error {
	opts := &r.options
	var timeoutSeconds int

	fs := flag.NewFlagSet("ofd-import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.APIKey, "api-key", opts.APIKey, "operator API key (API_KEY)")
	fs.StringVar(&opts.TaxID, "tax-id", opts.TaxID, "organisation tax id (TAX_ID)")
	fs.StringVar(&opts.DeviceID, "device-id", opts.DeviceID, "cash register registration number (DEVICE_ID)")
	fs.StringVar(&opts.StorageSerial, "storage", opts.StorageSerial, "fiscal storage factory number (STORAGE_SERIAL)")
	fs.StringVar(&opts.From, "from", opts.From, "first day to import (YYYY-MM-DD)")
	fs.StringVar(&opts.To, "to", opts.To, "last day to import (YYYY-MM-DD, defaults to -from)")
	fs.StringVar(&opts.BaseURL, "base-url", opts.BaseURL, "operator API base URL (BASE_URL)")
	fs.BoolVar(&opts.JSON, "json", false, "Output JSON format")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "Enable debug logging")
	fs.StringVar(&opts.LogFile, "log-file", opts.LogFile, "Log file path")
	fs.IntVar(&timeoutSeconds, "timeout", int(opts.Timeout.Seconds()), "Per-request timeout in seconds")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			fs.Usage()
			return nil
		}
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Args()[0])
	}

	if timeoutSeconds > 0 {
		opts.Timeout = time.Duration(timeoutSeconds) * time.Second
	}

	notifier := NewStderrNotifier()

	creds, err := assembleCredentials(r.config, opts, notifier, r.logger)
	if err != nil {
		return err
	}
	dates, err := parseDates(opts)
	if err != nil {
		return err
	}

	// Flags may point at a different operator endpoint than the loaded
	// config; in that case the fx-provided client is not usable and a
	// fresh one is built for this run only.
	retriever := r.retriever
	if opts.BaseURL != r.config.BaseURL || opts.Timeout != r.config.Timeout {
		ofdClient := ofd.NewClient(clientConfig(opts), r.logger)
		defer ofdClient.Close()
		retriever = source.NewRetriever(ofdClient, notifier, r.logger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	r.logger.Info("import started",
		zap.String("tax_id", creds.TaxID),
		zap.String("device_id", creds.DeviceID),
		zap.String("from", dates.Start.Format(dateLayout)),
		zap.String("to", dates.End.Format(dateLayout)),
	)

	receipts, err := retriever.Retrieve(ctx, creds, dates)
	if err != nil {
		return err
	}
	return writeReceipts(opts, receipts)
}

// assembleCredentials layers the flag values over the configured ones,
// one validated assignment at a time. A rejected value produces a notice
// and leaves the previously accepted value in place, the same way a
// settings form treats a bad edit.
func assembleCredentials(cfg config.Config, opts *Options, notifier source.Notifier, logger *zap.Logger) (source.Credentials, error) {
	creds := source.Credentials{
		APIKey:        opts.APIKey,
		StorageSerial: opts.StorageSerial,
	}

	creds = applyTaxID(creds, cfg.TaxID, notifier, logger)
	if opts.TaxID != cfg.TaxID {
		creds = applyTaxID(creds, opts.TaxID, notifier, logger)
	}
	creds = applyDeviceID(creds, cfg.DeviceID, notifier, logger)
	if opts.DeviceID != cfg.DeviceID {
		creds = applyDeviceID(creds, opts.DeviceID, notifier, logger)
	}

	if creds.APIKey == "" {
		return source.Credentials{}, errors.New("api key is required")
	}
	if creds.TaxID == "" {
		return source.Credentials{}, errors.New("a valid tax id is required")
	}
	if creds.DeviceID == "" {
		return source.Credentials{}, errors.New("a valid device id is required")
	}
	return creds, nil
}

func applyTaxID(creds source.Credentials, value string, notifier source.Notifier, logger *zap.Logger) source.Credentials {
	if value == "" {
		return creds
	}
	updated, err := creds.WithTaxID(value)
	if err != nil {
		logger.Warn("tax id rejected", zap.Error(err))
		notifier.Notify("Введен некорректный ИНН, значение не применено", "Некорректные данные")
		return creds
	}
	return updated
}

func applyDeviceID(creds source.Credentials, value string, notifier source.Notifier, logger *zap.Logger) source.Credentials {
	if value == "" {
		return creds
	}
	updated, err := creds.WithDeviceID(value)
	if err != nil {
		logger.Warn("device id rejected", zap.Error(err))
		notifier.Notify("Введен некорректный регистрационный номер, значение не применено", "Некорректные данные")
		return creds
	}
	return updated
}

func parseDates(opts *Options) (source.DateRange, error) {
	if opts.From == "" {
		return source.DateRange{}, errors.New("-from date is required")
	}
	start, err := time.Parse(dateLayout, opts.From)
	if err != nil {
		return source.DateRange{}, fmt.Errorf("invalid -from date: %w", err)
	}

	end := start
	if opts.To != "" {
		end, err = time.Parse(dateLayout, opts.To)
		if err != nil {
			return source.DateRange{}, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	if end.Before(start) {
		return source.DateRange{}, errors.New("-to must not be before -from")
	}

	return source.DateRange{Start: start, End: end}, nil
}

func clientConfig(opts *Options) config.Config {
	return config.Config{
		BaseURL: opts.BaseURL,
		Timeout: opts.Timeout,
	}
}
