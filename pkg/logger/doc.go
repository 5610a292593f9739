// Package logger builds *slog.Logger values for services that bind and
// validate partial updates.
//
// New takes functional options:
//
//   - WithFormat and WithLevel select the handler and minimum level.
//   - WithOutput redirects records, stdout by default.
//   - WithAttr attaches static attributes.
//   - WithContextValue copies a context value into every record, for example
//     a request id stored by router middleware.
//
// WithConfig turns a Config loaded from LOG_FORMAT and LOG_LEVEL into an option:
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	opt, err := logger.WithConfig(cfg)
//	if err != nil {
//		return err
//	}
//	log := logger.New(opt, logger.WithAttr(logger.Component("profile-api")))
//
// Attribute helpers keep key names consistent. Error drops nil errors, so
//
//	log.Info("patch applied", logger.Error(err))
//
// needs no nil check. Issues renders a validator.IssueList as a group keyed
// by property path.
package logger
