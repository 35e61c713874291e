package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sumeshkk123/cloud-sub010/internal/adminform"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
)

type metaOptions struct {
	server   string
	username string
	password string
	page     string
	locale   string
}

func newMetaCmd(opts *options) *cobra.Command {
	mo := &metaOptions{}

	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Edit page meta details and titles on a running server",
		Long: `Edit the per-locale meta details and page titles of one page through
the admin API of a running server.

Available subcommands:
  show   - Print every locale of a page
  set    - Update fields of one locale
  delete - Remove both records of one locale`,
	}
	cmd.PersistentFlags().StringVar(&mo.server, "server", "http://localhost:8080", "server base URL")
	cmd.PersistentFlags().StringVar(&mo.username, "username", "", "admin username (default: $SUPER_ROOT_USER_NAME)")
	cmd.PersistentFlags().StringVar(&mo.password, "password", "", "admin password (default: $SUPER_ROOT_PASSWORD)")
	cmd.PersistentFlags().StringVar(&mo.page, "page", "", "page key, e.g. home or features/e-wallet")
	cmd.PersistentFlags().StringVar(&mo.locale, "locale", "", "locale to edit (default: the form's initial locale)")
	_ = cmd.MarkPersistentFlagRequired("page")

	cmd.AddCommand(newMetaShowCmd(opts, mo), newMetaSetCmd(opts, mo), newMetaDeleteCmd(opts, mo))
	return cmd
}

func newMetaShowCmd(opts *options, mo *metaOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every locale of a page",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, locales, err := openForm(cmd, opts, mo)
			if err != nil {
				return err
			}
			return printForm(cmd.OutOrStdout(), form, locales)
		},
	}
}

func newMetaSetCmd(opts *options, mo *metaOptions) *cobra.Command {
	values := make(map[adminform.Field]*string, len(adminform.AllFields))

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update fields of one locale; an empty value clears the field",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, _, err := openForm(cmd, opts, mo)
			if err != nil {
				return err
			}
			changed := 0
			for _, field := range adminform.AllFields {
				if !cmd.Flags().Changed(flagName(field)) {
					continue
				}
				if err := form.Set(field, *values[field]); err != nil {
					return err
				}
				changed++
			}
			if changed == 0 {
				return fmt.Errorf("nothing to set: pass at least one of --%s", strings.Join(flagNames(), ", --"))
			}
			return form.Save(cmd.Context())
		},
	}
	for _, field := range adminform.AllFields {
		values[field] = cmd.Flags().String(flagName(field), "", "new "+strings.ReplaceAll(string(field), "_", " "))
	}
	return cmd
}

func newMetaDeleteCmd(opts *options, mo *metaOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove both records of one locale",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, _, err := openForm(cmd, opts, mo)
			if err != nil {
				return err
			}
			return form.Delete(cmd.Context())
		},
	}
}

// openForm logs in, loads the page and selects --locale when given.
func openForm(cmd *cobra.Command, opts *options, mo *metaOptions) (*adminform.Form, *locale.Set, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	locales, err := locale.NewSet(opts.cfg.SupportedLocales, opts.cfg.DefaultLocale)
	if err != nil {
		return nil, nil, err
	}

	username, password := mo.username, mo.password
	if username == "" {
		username = opts.cfg.SuperRootUserName
	}
	if password == "" {
		password = opts.cfg.SuperRootPassword
	}

	backend := adminform.NewHTTPBackend(mo.server, nil)
	if err := backend.Login(ctx, username, password); err != nil {
		return nil, nil, fmt.Errorf("login: %w", err)
	}

	form := adminform.New(backend, locales, writerToaster{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()})
	if err := form.Load(ctx, mo.page); err != nil {
		return nil, nil, err
	}
	if mo.locale != "" {
		if err := form.Select(mo.locale); err != nil {
			return nil, nil, err
		}
	}
	return form, locales, nil
}

func printForm(w io.Writer, form *adminform.Form, locales *locale.Set) error {
	fmt.Fprintf(w, "page: %s\n", form.Page())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCALE\tSAVED\tFIELD\tVALUE")
	for _, lang := range locales.Supported() {
		fields := form.Fields(lang)
		marker := ""
		if lang == form.Active() {
			marker = "*"
		}
		for _, field := range adminform.AllFields {
			value, _ := fields.Get(field)
			if value == "" {
				continue
			}
			fmt.Fprintf(tw, "%s%s\t%t\t%s\t%s\n", lang, marker, form.Saved(lang), field, value)
		}
		if !form.Saved(lang) {
			fmt.Fprintf(tw, "%s%s\t%t\t-\t-\n", lang, marker, false)
		}
	}
	return tw.Flush()
}

func flagName(field adminform.Field) string {
	return strings.ReplaceAll(string(field), "_", "-")
}

func flagNames() []string {
	names := make([]string, 0, len(adminform.AllFields))
	for _, field := range adminform.AllFields {
		names = append(names, flagName(field))
	}
	return names
}

// writerToaster prints form notifications to the command's output streams.
type writerToaster struct {
	out io.Writer
	err io.Writer
}

func (t writerToaster) Success(message string) { fmt.Fprintln(t.out, message) }
func (t writerToaster) Error(message string)   { fmt.Fprintln(t.err, "error: "+message) }
