// Package shell drives the interactive main menu.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rogerio-castellano/inventory-manager/internal/analysis"
	"github.com/rogerio-castellano/inventory-manager/internal/backup"
	"github.com/rogerio-castellano/inventory-manager/internal/catalog"
	"github.com/rogerio-castellano/inventory-manager/internal/clean"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

const lineWidth = 50

type Shell struct {
	in         *bufio.Scanner
	out        io.Writer
	svc        *catalog.Service
	store      repo.ProductRepository
	backupFile string
	log        *slog.Logger
}

func New(in io.Reader, out io.Writer, svc *catalog.Service, store repo.ProductRepository, backupFile string, log *slog.Logger) *Shell {
	return &Shell{
		in:         bufio.NewScanner(in),
		out:        out,
		svc:        svc,
		store:      store,
		backupFile: backupFile,
		log:        log,
	}
}

// Run loops on the main menu until the operator quits or input ends.
func (s *Shell) Run() error {
	for {
		s.printMenu()
		choice, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "v":
			s.viewProduct()
		case "a":
			s.addProduct()
		case "b":
			s.backupDB()
		case "l":
			s.listProducts()
		case "x":
			s.analyzeProducts()
		case "q":
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Please choose one of the options above.")
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, center("PRODUCT INVENTORY"))
	fmt.Fprintln(s.out, strings.Repeat("=", lineWidth))
	fmt.Fprintln(s.out, center("MAIN MENU"))
	fmt.Fprintln(s.out, strings.Repeat("=", lineWidth))
	fmt.Fprint(s.out, `
V. View a Product by ID
A. Add New Product
B. Backup the Database
L. List All Products
X. Product Analysis
Q. Quit

What would you like to do? `)
}

func (s *Shell) addProduct() {
	s.banner("ADD NEW PRODUCT")
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	quantity, ok := s.promptQuantity()
	if !ok {
		return
	}
	price, ok := s.promptPrice()
	if !ok {
		return
	}

	result, _, err := s.svc.AddOrUpdate(name, quantity, price, s.confirmNew)
	if err != nil {
		s.operationFailed(err)
		return
	}
	switch result {
	case catalog.Updated:
		fmt.Fprintf(s.out, "\n%s has been updated in the database.\n", name)
	case catalog.Added:
		fmt.Fprintf(s.out, "\n%s has been added to the database.\n", name)
	case catalog.Discarded:
		fmt.Fprintln(s.out, "\nProduct not added.")
	}
}

// confirmNew shows the staged product and accepts exactly "y" (any case).
// Anything else discards the entry with no retry.
func (s *Shell) confirmNew(p models.Product) bool {
	fmt.Fprintf(s.out, "\n%s %d %s\n", p.Name, p.Quantity, clean.HumanPrice(p.Price))
	answer, ok := s.prompt("Is this correct? (y/n): ")
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func (s *Shell) viewProduct() {
	s.banner("VIEW PRODUCT BY ID")
	ids, err := s.svc.IDList()
	if err != nil {
		s.operationFailed(err)
		return
	}

	var id int
	for {
		text, ok := s.prompt(fmt.Sprintf("Enter a product's ID number (%d-%d): ", ids[0], ids[len(ids)-1]))
		if !ok {
			return
		}
		id, err = clean.ID(text, ids)
		if err == nil {
			break
		}
		var rangeErr *clean.RangeError
		if errors.As(err, &rangeErr) {
			fmt.Fprintln(s.out, rangeErr.Error())
		} else {
			fmt.Fprintln(s.out, "The id should be a number. Example: 1")
		}
	}

	p, err := s.svc.Get(id)
	if err != nil {
		s.operationFailed(err)
		return
	}
	fmt.Fprintln(s.out, strings.Repeat("*", lineWidth))
	fmt.Fprintf(s.out, "%s\nPrice: %s\nQuantity: %d\nDate Updated: %s\n",
		p.Name, clean.HumanPrice(p.Price), p.Quantity, clean.HumanDate(p.UpdatedAt))
	fmt.Fprintln(s.out, strings.Repeat("*", lineWidth))
}

func (s *Shell) listProducts() {
	s.banner("LIST ALL PRODUCTS")
	products, err := s.svc.List()
	if err != nil {
		s.operationFailed(err)
		return
	}
	for _, p := range products {
		fmt.Fprintf(s.out, "%d: %s, Qty: %d, Price: %s, Date Updated: %s\n",
			p.ID, p.Name, p.Quantity, clean.HumanPrice(p.Price), clean.HumanDate(p.UpdatedAt))
	}
}

func (s *Shell) backupDB() {
	s.banner("BACKUP DATABASE")
	f, err := os.Create(s.backupFile)
	if err != nil {
		s.operationFailed(err)
		return
	}
	defer f.Close()

	n, err := backup.Export(f, s.store)
	if err != nil {
		s.operationFailed(err)
		return
	}
	s.log.Info("backup written", "file", s.backupFile, "products", n)
	fmt.Fprintf(s.out, "Product data has been backed up to %q (%d products).\n", s.backupFile, n)
}

func (s *Shell) analyzeProducts() {
	s.banner("PRODUCT ANALYSIS")
	rep, err := analysis.Run(s.store)
	if err != nil {
		s.operationFailed(err)
		return
	}
	fmt.Fprintf(s.out, "Total products: %d\n", rep.TotalProducts)
	fmt.Fprintf(s.out, "Most expensive: %s: %s\n", clean.HumanPrice(rep.MostExpensive.Price), rep.MostExpensive.Name)
	fmt.Fprintf(s.out, "Least expensive: %s: %s\n", clean.HumanPrice(rep.LeastExpensive.Price), rep.LeastExpensive.Name)
	fmt.Fprintf(s.out, "Average price: %s\n", clean.HumanPriceFloat(rep.AveragePrice))
	fmt.Fprintf(s.out, "Oldest: %s: %s\n", clean.HumanDate(rep.Oldest.UpdatedAt), rep.Oldest.Name)
	fmt.Fprintf(s.out, "Newest: %s: %s\n", clean.HumanDate(rep.Newest.UpdatedAt), rep.Newest.Name)
	fmt.Fprintf(s.out, "Highest quantity: %d %s\n", rep.HighestQuantity.Quantity, rep.HighestQuantity.Name)
	fmt.Fprintf(s.out, "Lowest quantity: %d %s\n", rep.LowestQuantity.Quantity, rep.LowestQuantity.Name)
}

// promptQuantity re-prompts until the input parses.
func (s *Shell) promptQuantity() (int, bool) {
	for {
		text, ok := s.prompt("Quantity: ")
		if !ok {
			return 0, false
		}
		qty, err := clean.Quantity(text)
		if err == nil {
			return qty, true
		}
		fmt.Fprintln(s.out, "The quantity should be a number. Example: 100")
	}
}

// promptPrice re-prompts until the input parses.
func (s *Shell) promptPrice() (int, bool) {
	for {
		text, ok := s.prompt("Price (Ex: 12.99): ")
		if !ok {
			return 0, false
		}
		price, err := clean.Price(text)
		if err == nil {
			return price, true
		}
		fmt.Fprintln(s.out, "The price format should be a number without a currency symbol. Ex: 12.99")
	}
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) operationFailed(err error) {
	if errors.Is(err, repo.ErrNoProducts) {
		fmt.Fprintln(s.out, "There are no products in the inventory yet.")
		return
	}
	s.log.Error("operation failed", "error", err)
	fmt.Fprintln(s.out, "Something went wrong:", err)
}

func (s *Shell) banner(title string) {
	fmt.Fprintln(s.out, strings.Repeat("-", lineWidth))
	fmt.Fprintln(s.out, center(title))
	fmt.Fprintln(s.out, strings.Repeat("-", lineWidth))
}

func center(text string) string {
	if pad := (lineWidth - len(text)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}
