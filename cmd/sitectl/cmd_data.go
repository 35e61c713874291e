package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newInitUserCmd(opts *options) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "init-user",
		Short: "Create the admin user if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = opts.cfg.SuperRootUserName
			}
			if password == "" {
				password = opts.cfg.SuperRootPassword
			}
			if username == "" || password == "" {
				return errors.New("username and password are required (flags or SUPER_ROOT_USER_NAME / SUPER_ROOT_PASSWORD)")
			}

			gdb, err := openDB(opts)
			if err != nil {
				return err
			}
			created, err := db.EnsureUser(gdb, username, password)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "user %q already exists\n", username)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %q created\n", username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	return cmd
}

func newSeedCmd(opts *options) *cobra.Command {
	var samples bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed industry solutions and, optionally, sample page records",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := openDB(opts)
			if err != nil {
				return err
			}
			catalog, err := content.Default(opts.cfg.DefaultLocale)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			locales, err := locale.NewSet(opts.cfg.SupportedLocales, opts.cfg.DefaultLocale)
			if err != nil {
				return err
			}

			industries, err := service.NewIndustrySolutionService(gdb, locales).SeedFromCatalog(catalog)
			if err != nil {
				return fmt.Errorf("seed industry solutions: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "industry solutions: %d created\n", industries)

			if !samples {
				return nil
			}
			metas, titles, err := seedSamplePages(gdb, catalog, locales)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "meta details: %d created\npage titles: %d created\n", metas, titles)
			return nil
		},
	}
	cmd.Flags().BoolVar(&samples, "samples", false, "also copy catalog copy of top-level pages into admin records")
	return cmd
}

// seedSamplePages copies catalog copy of the home, pricing and feature pages
// into default-locale admin records. Existing records are left alone.
func seedSamplePages(gdb *gorm.DB, catalog *content.Catalog, locales *locale.Set) (metas, titles int, err error) {
	metaSvc := service.NewMetaDetailService(gdb, locales)
	titleSvc := service.NewPageTitleService(gdb, locales)
	lang := locales.Default()

	for _, page := range catalog.Pages() {
		switch page.Kind {
		case content.KindHome, content.KindPricing, content.KindFeature:
		default:
			continue
		}
		key := content.AdminKey(page.Slug)

		if _, err := metaSvc.Get(key, lang); errors.Is(err, service.ErrMetaDetailNotFound) {
			if _, err := metaSvc.Upsert(service.MetaDetailInput{
				Page:        key,
				Locale:      lang,
				Title:       text(page.Meta.Title, lang),
				Description: text(page.Meta.Description, lang),
				Keywords:    text(page.Meta.Keywords, lang),
			}); err != nil {
				return metas, titles, fmt.Errorf("seed meta details %s: %w", key, err)
			}
			metas++
		} else if err != nil {
			return metas, titles, err
		}

		if _, err := titleSvc.Get(key, lang); errors.Is(err, service.ErrPageTitleNotFound) {
			if _, err := titleSvc.Upsert(service.PageTitleInput{
				Page:            key,
				Locale:          lang,
				Title:           text(page.Hero.Title, lang),
				PagePill:        text(page.Hero.Pill, lang),
				SectionSubtitle: text(page.Hero.Subtitle, lang),
			}); err != nil {
				return metas, titles, fmt.Errorf("seed page title %s: %w", key, err)
			}
			titles++
		} else if err != nil {
			return metas, titles, err
		}
	}
	return metas, titles, nil
}

func text(value content.Localized, lang string) *string {
	s := value.In(lang, lang)
	return &s
}

func openDB(opts *options) (*gorm.DB, error) {
	gdb, err := db.Open(opts.databasePath, logger.Warn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return gdb, nil
}
