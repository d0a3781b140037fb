package validate

import (
	"math"
	"regexp"
	"strings"

	"bikeaccessories/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	// product and place ids are "<slug>-<ms>"; slugs keep any non-space rune
	reID = regexp.MustCompile(`^[^\s/]{1,128}$`)
)

// boundsEps absorbs float noise such as 0.65+0.35 when checking the map edge.
const boundsEps = 1e-9

// Email trims s and checks it has the "local@domain.tld" shape.
func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a resource identifier (product, place or order id).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Price accepts finite, strictly positive amounts.
func Price(f float64) bool { return finite(f) && f > 0 }

// Coord accepts a normalized map coordinate in [0,1].
func Coord(f float64) bool { return finite(f) && f >= 0 && f <= 1 }

// Sort maps a sort parameter onto a known key; anything else sorts by name.
func Sort(s string) domain.SortKey {
	switch k := domain.SortKey(strings.TrimSpace(s)); k {
	case domain.SortName, domain.SortPriceLow, domain.SortPriceHigh, domain.SortStock:
		return k
	}
	return domain.SortName
}

// Customer trims every checkout field and returns per-field messages for
// the ones that are missing or malformed. An empty map means valid.
func Customer(in domain.CustomerInfo) (domain.CustomerInfo, map[string]string) {
	out := domain.CustomerInfo{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
		City:    strings.TrimSpace(in.City),
		ZipCode: strings.TrimSpace(in.ZipCode),
		Country: strings.TrimSpace(in.Country),
	}
	errs := map[string]string{}
	if out.Name == "" {
		errs["name"] = "Name is required"
	}
	if out.Email == "" {
		errs["email"] = "Email is required"
	} else if _, ok := Email(out.Email); !ok {
		errs["email"] = "Invalid email format"
	}
	if out.Phone == "" {
		errs["phone"] = "Phone is required"
	}
	if out.Address == "" {
		errs["address"] = "Address is required"
	}
	if out.City == "" {
		errs["city"] = "City is required"
	}
	if out.ZipCode == "" {
		errs["zipCode"] = "Zip code is required"
	}
	if out.Country == "" {
		errs["country"] = "Country is required"
	}
	return out, errs
}

// Product checks the admin product form. It returns the trimmed input and
// an empty message when valid.
func Product(in domain.ProductInput) (domain.ProductInput, string) {
	name, ok := Name(in.Name)
	if !ok || !Price(in.Price) {
		return in, "Please fill in all required fields (name and price must be > 0)"
	}
	in.Name = name
	in.Image = strings.TrimSpace(in.Image)
	if !Coord(in.Location.X) || !Coord(in.Location.Y) {
		return in, "Location must lie within the map"
	}
	in.Location.Zone = strings.TrimSpace(in.Location.Zone)
	return in, ""
}

// Place checks the place form. Geometry is only checked for manual
// placement; auto placement computes its own.
func Place(in domain.PlaceInput, auto bool) (domain.PlaceInput, string) {
	label, ok := Name(in.Label)
	if !ok {
		return in, "Please enter a place name"
	}
	in.Label = label
	if auto {
		return in, ""
	}
	if !finite(in.Width) || !finite(in.Height) || in.Width <= 0 || in.Height <= 0 {
		return in, "Width and height must be greater than 0"
	}
	if !Coord(in.X) || !Coord(in.Y) || in.X+in.Width > 1+boundsEps || in.Y+in.Height > 1+boundsEps {
		return in, "Place exceeds map boundaries. Adjust position or size."
	}
	return in, ""
}
