// Package namer mounts the project name generator on an HTTP router.
//
// It serves the browser page, the DataStar generate action with its no-JS form
// fallback, and a small JSON API. Views are injected through Views so the
// package does not depend on a particular template set.
//
//	svc := namer.NewService(cfg, namegen.New(bank, nil), &namer.Views{
//		Page:    views.Page,
//		Results: views.Results,
//		Toast:   views.Toast,
//	}, namer.WithLogger(log), namer.WithRateLimiter(bucket))
//
//	r.Mount("/", svc.Handle())
package namer
