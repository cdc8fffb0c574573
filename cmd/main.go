package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/config"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/page/bookings"
	"github.com/cleanduds/admin-dashboard/page/categories"
	"github.com/cleanduds/admin-dashboard/page/customers"
	"github.com/cleanduds/admin-dashboard/page/dashboard"
	"github.com/cleanduds/admin-dashboard/page/products"
	profilepage "github.com/cleanduds/admin-dashboard/page/profile"
	"github.com/cleanduds/admin-dashboard/page/serviceareas"
	"github.com/cleanduds/admin-dashboard/service/analytics"
	"github.com/cleanduds/admin-dashboard/service/booking"
	"github.com/cleanduds/admin-dashboard/service/category"
	"github.com/cleanduds/admin-dashboard/service/customer"
	"github.com/cleanduds/admin-dashboard/service/feature"
	"github.com/cleanduds/admin-dashboard/service/product"
	"github.com/cleanduds/admin-dashboard/service/profile"
	"github.com/cleanduds/admin-dashboard/service/servicearea"
	"github.com/cleanduds/admin-dashboard/session"
	"github.com/cleanduds/admin-dashboard/utils/logger"
	"go.uber.org/zap"
)

const usage = `usage: dashboard <command> [flags]

commands:
  products       list, create, delete products
  categories     list categories
  bookings       list bookings, update status
  customers      list customers
  service-areas  list, add, delete service areas
  analytics      show the analytics overview
  profile        show the admin profile
`

// stdinConfirmer implements the pages' Confirmer over the terminal.
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(_ context.Context, message string) (bool, error) {
	fmt.Printf("%s [y/N]: ", message)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	sess := session.New(cfg.API.Token)
	notifier := notify.LogNotifier{}
	api := client.New(cfg.API, sess, notifier)

	if sub, ok := sess.Subject(); ok {
		logger.Debug("session token held", zap.String("subject", sub))
	}

	ctx := context.Background()
	confirm := stdinConfirmer{}
	var err error

	switch os.Args[1] {
	case "products":
		err = runProducts(ctx, api, notifier, confirm)
	case "categories":
		err = runCategories(ctx, api, notifier, confirm)
	case "bookings":
		err = runBookings(ctx, api, notifier)
	case "customers":
		err = runCustomers(ctx, api, notifier)
	case "service-areas":
		err = runServiceAreas(ctx, api, notifier, confirm)
	case "analytics":
		err = runAnalytics(ctx, api, notifier)
	case "profile":
		err = runProfile(ctx, api, notifier)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", os.Args[1]), zap.Error(err))
		os.Exit(1)
	}
}

func runProducts(ctx context.Context, api *client.Client, notifier notify.Notifier, confirm products.Confirmer) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	pageNum := fs.Int("page", 1, "page number")
	search := fs.String("search", "", "filter the loaded page by name or description")
	deleteID := fs.Int64("delete", 0, "delete the product with this id")
	fs.Parse(os.Args[2:])

	ctrl := products.NewController(
		product.NewProductService(api),
		category.NewCategoryService(api),
		notifier,
		confirm,
	)
	ctrl.LoadCategories(ctx)

	if *deleteID != 0 {
		return ctrl.Delete(ctx, *deleteID)
	}

	if err := ctrl.Load(ctx, *pageNum); err != nil {
		return err
	}
	ctrl.SetSearch(*search)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE/KG\tPOPULAR\tCATEGORY")
	for _, p := range ctrl.Visible() {
		popular := "-"
		if p.Popular {
			popular = "popular"
		}
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\n", p.ID, p.Name, p.PricePerKg, popular, ctrl.CategoryName(p.CategoryID))
	}
	w.Flush()
	if ctrl.ShowPagination() {
		fmt.Printf("page %d of %d\n", ctrl.Page(), ctrl.TotalPages())
	}
	return nil
}

func runCategories(ctx context.Context, api *client.Client, notifier notify.Notifier, confirm categories.Confirmer) error {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	pageNum := fs.Int("page", 1, "page number")
	search := fs.String("search", "", "filter the loaded page")
	deleteID := fs.Int64("delete", 0, "delete the category with this id")
	fs.Parse(os.Args[2:])

	ctrl := categories.NewController(
		category.NewCategoryService(api),
		feature.NewFeatureService(api),
		notifier,
		confirm,
	)

	if *deleteID != 0 {
		return ctrl.Delete(ctx, *deleteID)
	}

	if err := ctrl.Load(ctx, *pageNum); err != nil {
		return err
	}
	ctrl.SetSearch(*search)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tFEATURES")
	for _, c := range ctrl.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", c.ID, c.Name, c.Description, len(c.FeatureIDs))
	}
	w.Flush()
	if ctrl.ShowPagination() {
		fmt.Printf("page %d of %d\n", ctrl.Page(), ctrl.TotalPages())
	}
	return nil
}

func runBookings(ctx context.Context, api *client.Client, notifier notify.Notifier) error {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	pageNum := fs.Int("page", 1, "page number")
	search := fs.String("search", "", "filter by customer name or booking id")
	fs.Parse(os.Args[2:])

	ctrl := bookings.NewController(booking.NewBookingService(api), notifier)
	if err := ctrl.Load(ctx, *pageNum); err != nil {
		return err
	}
	ctrl.SetSearch(*search)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tPICKUP\tAMOUNT\tSTATUS\tPAID")
	for _, b := range ctrl.Visible() {
		paid := "no"
		if b.IsPaid {
			paid = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%s\n", b.ID, b.User.Name, b.PickupDate, float64(b.Amount), b.Status.Label(), paid)
	}
	w.Flush()
	if ctrl.ShowPagination() {
		fmt.Printf("page %d of %d\n", ctrl.Page(), ctrl.TotalPages())
	}
	return nil
}

func runCustomers(ctx context.Context, api *client.Client, notifier notify.Notifier) error {
	fs := flag.NewFlagSet("customers", flag.ExitOnError)
	pageNum := fs.Int("page", 1, "page number")
	search := fs.String("search", "", "filter by name or email")
	fs.Parse(os.Args[2:])

	ctrl := customers.NewController(customer.NewCustomerService(api), notifier)
	if err := ctrl.Load(ctx, *pageNum); err != nil {
		return err
	}
	ctrl.SetSearch(*search)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tORDERS\tSPENT")
	for _, c := range ctrl.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\n", c.ID, c.Name, c.Email, c.TotalOrders, float64(c.TotalSpent))
	}
	w.Flush()
	if ctrl.ShowPagination() {
		fmt.Printf("page %d of %d\n", ctrl.Page(), ctrl.TotalPages())
	}
	return nil
}

func runServiceAreas(ctx context.Context, api *client.Client, notifier notify.Notifier, confirm serviceareas.Confirmer) error {
	fs := flag.NewFlagSet("service-areas", flag.ExitOnError)
	addPincode := fs.String("add", "", "add a service area for this 6-digit pincode")
	areaList := fs.String("areas", "", "comma-separated area names for -add")
	detail := fs.String("detail", "", "show areas served for this pincode")
	deleteID := fs.Int64("delete", 0, "delete the service area with this id")
	fs.Parse(os.Args[2:])

	svc := servicearea.NewServiceAreaService(api)
	ctrl := serviceareas.NewController(svc, notifier, confirm)

	if *addPincode != "" {
		form := serviceareas.NewForm(svc, notifier)
		form.Reset()
		form.Draft.Pincode = *addPincode
		for _, area := range strings.Split(*areaList, ",") {
			form.AddArea(area)
		}
		return form.Submit(ctx)
	}

	if *detail != "" {
		area, err := ctrl.Detail(ctx, *detail)
		if err != nil {
			return err
		}
		fmt.Printf("pincode %s serves %d area(s):\n", area.Pincode, len(area.Areas))
		for _, name := range area.Areas {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	if *deleteID != 0 {
		return ctrl.Delete(ctx, *deleteID)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPINCODE\tAREAS")
	for _, area := range ctrl.Items() {
		fmt.Fprintf(w, "%d\t%s\t%d\n", area.ID, area.Pincode, len(area.Areas))
	}
	w.Flush()
	fmt.Printf("%d pincode(s) configured\n", len(ctrl.Items()))
	return nil
}

func runAnalytics(ctx context.Context, api *client.Client, notifier notify.Notifier) error {
	fs := flag.NewFlagSet("analytics", flag.ExitOnError)
	year := fs.Int("year", 0, "calendar year (defaults to current)")
	month := fs.Int("month", 0, "month 1-12, 0 for all")
	start := fs.String("start", "", "start date YYYY-MM-DD")
	end := fs.String("end", "", "end date YYYY-MM-DD")
	fs.Parse(os.Args[2:])

	ctrl := dashboard.NewController(analytics.NewAnalyticsService(api), notifier)
	filters := ctrl.Filters()
	if *year != 0 {
		filters.Year = *year
	}
	filters.Month = *month
	filters.StartDate = *start
	filters.EndDate = *end
	ctrl.SetFilters(filters)

	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	data := ctrl.Data()
	if data == nil {
		return nil
	}

	fmt.Printf("total revenue:    %.2f\n", float64(data.Summary.TotalRevenue))
	fmt.Printf("avg order value:  %.2f\n", float64(data.Summary.AverageOrderValue))
	fmt.Printf("total bookings:   %d\n", data.Summary.TotalBookings)
	fmt.Printf("repeat customers: %d\n", data.Summary.RepeatCustomers)
	if data.BestSeller != nil {
		fmt.Printf("best seller:      %s (%d sold)\n", data.BestSeller.Name, data.BestSeller.TotalSold)
	}
	if len(data.Timeline) > 0 {
		fmt.Println("revenue timeline:")
		for _, point := range data.Timeline {
			fmt.Printf("  %-12s %.2f\n", point.Label, float64(point.Revenue))
		}
	}
	return nil
}

func runProfile(ctx context.Context, api *client.Client, notifier notify.Notifier) error {
	ctrl := profilepage.NewController(profile.NewProfileService(api), notifier)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	me := ctrl.Me()
	if me == nil {
		return nil
	}
	fmt.Printf("name:  %s\nemail: %s\nrole:  %s\n", me.Name, me.Email, me.Role)
	return nil
}
