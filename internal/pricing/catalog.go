package pricing

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// SubCategoryOther подкатегория по умолчанию, когда ни одно ключевое слово не совпало.
const SubCategoryOther = "Other"

type KeywordSet struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CoinService услуга, которую можно получить за монеты вместо баланса.
type CoinService struct {
	Key       string `yaml:"key"`
	ServiceID string `yaml:"serviceId"`
	Quantity  int64  `yaml:"quantity"`
	Cost      int64  `yaml:"cost"`
	Name      string `yaml:"name"`
}

// Catalog неизменяемые таблицы ключевых слов и каталог монетных услуг. Загружается один раз при старте.
type Catalog struct {
	Platforms     []KeywordSet  `yaml:"platforms"`
	SubCategories []KeywordSet  `yaml:"subCategories"`
	CoinServices  []CoinService `yaml:"coinServices"`
}

// LoadCatalog читает каталог из файла path. Пустой path означает встроенный каталог по умолчанию.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var readErr error
		data, readErr = os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read pricing catalog: %s", readErr.Error())
		}
	}
	return ParseCatalog(data)
}

// MustLoadDefaultCatalog возвращает встроенный каталог. Паникует, если встроенный YAML невалиден.
func MustLoadDefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse pricing catalog: %s", err.Error())
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("parse pricing catalog: %w", err)
	}
	c.normalize()
	return &c, nil
}

// CoinService ищет монетную услугу по ключу.
func (c *Catalog) CoinService(key string) (CoinService, bool) {
	for _, s := range c.CoinServices {
		if s.Key == key {
			return s, true
		}
	}
	return CoinService{}, false
}

func (c *Catalog) validate() error {
	if len(c.Platforms) == 0 {
		return errors.New("no platforms defined")
	}
	seen := make(map[string]struct{}, len(c.CoinServices))
	for _, s := range c.CoinServices {
		if s.Key == "" || s.ServiceID == "" {
			return errors.New("coin service without key or serviceId")
		}
		if s.Quantity <= 0 || s.Cost <= 0 {
			return fmt.Errorf("coin service %s: quantity and cost must be positive", s.Key)
		}
		if _, ok := seen[s.Key]; ok {
			return fmt.Errorf("coin service %s defined twice", s.Key)
		}
		seen[s.Key] = struct{}{}
	}
	return nil
}

// normalize приводит ключевые слова к нижнему регистру, сравнение везде регистронезависимое.
func (c *Catalog) normalize() {
	lower := func(sets []KeywordSet) {
		for i := range sets {
			for j, kw := range sets[i].Keywords {
				sets[i].Keywords[j] = strings.ToLower(kw)
			}
		}
	}
	lower(c.Platforms)
	lower(c.SubCategories)
}
