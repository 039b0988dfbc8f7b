// Package store persists whole-collection snapshots of properties, monthly
// records and branding as YAML files in a data directory. The core packages
// exchange snapshots with this store and keep no long-lived state.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"mrossi/rendiconti/internal/logging"
	"mrossi/rendiconti/internal/models"
)

const (
	propertiesFile = "properties.yaml"
	recordsFile    = "records.yaml"
	brandFile      = "brand.yaml"
)

var log = logging.New("info", "text")

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store reads and writes snapshot files under a single directory.
type Store struct {
	Dir string
}

// New creates a store rooted at dir. An empty dir resolves to
// ~/.rendiconti/data, falling back to ./data when no home directory exists.
func New(dir string) *Store {
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".rendiconti", "data")
		} else {
			dir = "data"
		}
	}
	return &Store{Dir: dir}
}

// propertyDoc is the persisted form of a property. Amounts are stored as
// plain decimal strings so snapshots stay readable and diffable.
type propertyDoc struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	OwnerType     string `yaml:"ownerType"`
	CommissionPct string `yaml:"commissionPct"`
	OwnerDisplay  string `yaml:"ownerDisplay,omitempty"`
	Address       string `yaml:"address,omitempty"`
	Cover         string `yaml:"cover,omitempty"`
}

type recordDoc struct {
	ID         string `yaml:"id"`
	PropertyID string `yaml:"propertyId"`
	Year       int    `yaml:"year"`
	Month      int    `yaml:"month"`
	Airbnb     string `yaml:"airbnb"`
	Pulizie    string `yaml:"pulizie"`
	AltreSpese string `yaml:"altreSpese"`
	Notes      string `yaml:"notes,omitempty"`
}

// LoadProperties loads the property snapshot. A missing file yields an
// empty collection, not an error.
func (s *Store) LoadProperties() ([]models.Property, error) {
	var docs []propertyDoc
	if err := s.loadFile(propertiesFile, &docs); err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(docs))
	for _, d := range docs {
		properties = append(properties, models.Property{
			ID:            d.ID,
			Name:          d.Name,
			OwnerType:     models.ParseOwnerType(d.OwnerType),
			CommissionPct: models.ParseAmount(d.CommissionPct),
			OwnerDisplay:  d.OwnerDisplay,
			Address:       d.Address,
			Cover:         d.Cover,
		})
	}
	return properties, nil
}

// SaveProperties replaces the property snapshot.
func (s *Store) SaveProperties(properties []models.Property) error {
	docs := make([]propertyDoc, 0, len(properties))
	for _, p := range properties {
		docs = append(docs, propertyDoc{
			ID:            p.ID,
			Name:          p.Name,
			OwnerType:     string(p.OwnerType),
			CommissionPct: p.CommissionPct.String(),
			OwnerDisplay:  p.OwnerDisplay,
			Address:       p.Address,
			Cover:         p.Cover,
		})
	}
	return s.saveFile(propertiesFile, docs)
}

// LoadRecords loads the monthly record snapshot. A missing file yields an
// empty collection, not an error.
func (s *Store) LoadRecords() ([]models.MonthlyRecord, error) {
	var docs []recordDoc
	if err := s.loadFile(recordsFile, &docs); err != nil {
		return nil, err
	}

	records := make([]models.MonthlyRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, models.MonthlyRecord{
			ID:         d.ID,
			PropertyID: d.PropertyID,
			Year:       d.Year,
			Month:      d.Month,
			Airbnb:     models.ParseAmount(d.Airbnb),
			Pulizie:    models.ParseAmount(d.Pulizie),
			AltreSpese: models.ParseAmount(d.AltreSpese),
			Notes:      d.Notes,
		})
	}
	return records, nil
}

// SaveRecords replaces the monthly record snapshot.
func (s *Store) SaveRecords(records []models.MonthlyRecord) error {
	docs := make([]recordDoc, 0, len(records))
	for _, r := range records {
		docs = append(docs, recordDoc{
			ID:         r.ID,
			PropertyID: r.PropertyID,
			Year:       r.Year,
			Month:      r.Month,
			Airbnb:     r.Airbnb.String(),
			Pulizie:    r.Pulizie.String(),
			AltreSpese: r.AltreSpese.String(),
			Notes:      r.Notes,
		})
	}
	return s.saveFile(recordsFile, docs)
}

// LoadBrand loads the branding snapshot. A missing file yields a zero Brand.
func (s *Store) LoadBrand() (models.Brand, error) {
	var brand models.Brand
	if err := s.loadFile(brandFile, &brand); err != nil {
		return models.Brand{}, err
	}
	return brand, nil
}

// SaveBrand replaces the branding snapshot.
func (s *Store) SaveBrand(brand models.Brand) error {
	return s.saveFile(brandFile, brand)
}

// DeleteProperty removes a property and cascades to every record that
// references it.
func (s *Store) DeleteProperty(id string) error {
	properties, err := s.LoadProperties()
	if err != nil {
		return err
	}
	records, err := s.LoadRecords()
	if err != nil {
		return err
	}

	kept := properties[:0]
	found := false
	for _, p := range properties {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("property not found: %s", id)
	}

	keptRecords := records[:0]
	removed := 0
	for _, r := range records {
		if r.PropertyID == id {
			removed++
			continue
		}
		keptRecords = append(keptRecords, r)
	}

	if err := s.SaveProperties(kept); err != nil {
		return err
	}
	if err := s.SaveRecords(keptRecords); err != nil {
		return err
	}

	log.Info("Deleted property with cascading records",
		logging.F("id", id),
		logging.F("records", removed))
	return nil
}

// Reset deletes every snapshot file, restoring the empty initial state.
// Missing files are ignored.
func (s *Store) Reset() error {
	for _, name := range []string{propertiesFile, recordsFile, brandFile} {
		path := filepath.Join(s.Dir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing %s: %w", path, err)
		}
	}
	log.Info("Reset all snapshots", logging.F("dir", s.Dir))
	return nil
}

func (s *Store) loadFile(name string, out interface{}) error {
	path := filepath.Join(s.Dir, name)
	data, err := os.ReadFile(path) // #nosec G304 -- paths are confined to the data directory
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Snapshot file not found, starting empty", logging.F("file", path))
			return nil
		}
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	return nil
}

func (s *Store) saveFile(name string, in interface{}) error {
	if err := os.MkdirAll(s.Dir, 0750); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}

	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", name, err)
	}

	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	log.Debug("Saved snapshot", logging.F("file", path))
	return nil
}
