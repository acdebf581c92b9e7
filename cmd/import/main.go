// Importador masivo de productos desde CSV. Es un colaborador batch externo
// al core: cada fila pasa por el mismo CreateProduct que usa la API, con las
// mismas validaciones y defaults. Filas inválidas se reportan y se continúa.
//
// Formato esperado (con encabezado):
//
//	name,sku,category,price,cost,stock,min_stock,supplier,aliases
//
// aliases usa ";" como separador dentro de la celda.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jhoicas/almacen-api/internal/application/command"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	filePath := flag.String("file", "", "ruta del CSV de productos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *filePath == "" {
		log.Fatal().Msg("uso: import -file productos.csv")
	}
	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", *filePath).Msg("abrir CSV")
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de la base de datos")
	}

	uc := command.NewUseCase(
		postgres.NewProductRepository(pool),
		postgres.NewTxRunner(pool),
	)

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	// Encabezado
	if _, err := reader.Read(); err != nil {
		log.Fatal().Err(err).Msg("leer encabezado del CSV")
	}

	var imported, failed int
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("fila ilegible, se omite")
			failed++
			continue
		}
		in, err := parseRow(record)
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("fila inválida, se omite")
			failed++
			continue
		}
		if _, err := uc.CreateProduct(*in); err != nil {
			log.Warn().Err(err).Int("line", line).Str("sku", in.SKU).Msg("producto no importado")
			failed++
			continue
		}
		imported++
	}

	log.Info().Int("imported", imported).Int("failed", failed).Msg("importación terminada")
}

func parseRow(record []string) (*dto.CreateProductRequest, error) {
	if len(record) < 5 {
		return nil, errFields
	}
	price, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return nil, err
	}
	cost, err := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
	if err != nil {
		return nil, err
	}
	in := &dto.CreateProductRequest{
		Name:     strings.TrimSpace(record[0]),
		SKU:      strings.TrimSpace(record[1]),
		Category: strings.TrimSpace(record[2]),
		Price:    price,
		Cost:     cost,
	}
	if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
		stock, err := strconv.ParseInt(strings.TrimSpace(record[5]), 10, 64)
		if err != nil {
			return nil, err
		}
		in.Stock = &stock
	}
	if len(record) > 6 && strings.TrimSpace(record[6]) != "" {
		minStock, err := strconv.ParseInt(strings.TrimSpace(record[6]), 10, 64)
		if err != nil {
			return nil, err
		}
		in.MinStock = &minStock
	}
	if len(record) > 7 {
		in.Supplier = strings.TrimSpace(record[7])
	}
	if len(record) > 8 && strings.TrimSpace(record[8]) != "" {
		for _, a := range strings.Split(record[8], ";") {
			if a = strings.TrimSpace(a); a != "" {
				in.Aliases = append(in.Aliases, a)
			}
		}
	}
	return in, nil
}

var errFields = errInvalidRow("la fila necesita al menos name,sku,category,price,cost")

type errInvalidRow string

func (e errInvalidRow) Error() string { return string(e) }
