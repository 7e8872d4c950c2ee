// factulink es la herramienta local de enlaces de factura. Todo corre en la
// máquina del usuario; ningún subcomando toca la red.
//
// Uso:
//
//	factulink encode factura.json        imprime la URL compartible
//	factulink decode <url-o-fragmento>   imprime la factura en JSON
//	factulink pdf <url-o-fragmento> [-o salida.pdf]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/factulink/internal/application/sharing"
	"github.com/jhoicas/factulink/internal/domain/entity"
	"github.com/jhoicas/factulink/internal/infrastructure/pdf"
	"github.com/jhoicas/factulink/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	shareUC := sharing.NewShareUseCase(cfg.Share.BaseURL, cfg.Share.IncludeOG)

	switch os.Args[1] {
	case "encode":
		cmdEncode(shareUC, os.Args[2:])
	case "decode":
		cmdDecode(shareUC, os.Args[2:])
	case "pdf":
		cmdPDF(shareUC, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Uso: factulink <encode|decode|pdf> ...")
	fmt.Fprintln(os.Stderr, "  encode factura.json")
	fmt.Fprintln(os.Stderr, "  decode <url-o-fragmento>")
	fmt.Fprintln(os.Stderr, "  pdf <url-o-fragmento> [-o salida.pdf]")
}

func cmdEncode(uc *sharing.ShareUseCase, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "encode: falta el archivo JSON de la factura")
		os.Exit(2)
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer factura: %v\n", err)
		os.Exit(1)
	}
	var inv entity.Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		fmt.Fprintf(os.Stderr, "Parsear factura: %v\n", err)
		os.Exit(1)
	}
	if inv.Version == 0 {
		inv.Version = entity.CurrentSchemaVersion
	}
	result, err := uc.Share(&inv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar enlace: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result.URL)
}

func cmdDecode(uc *sharing.ShareUseCase, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "decode: falta la URL o el fragmento")
		os.Exit(2)
	}
	inv, err := uc.Decode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar: %v\n", err)
		os.Exit(1)
	}
	out, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Serializar factura: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func cmdPDF(uc *sharing.ShareUseCase, args []string) {
	fs := flag.NewFlagSet("pdf", flag.ExitOnError)
	out := fs.String("o", "factura.pdf", "archivo PDF de salida")
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "pdf: falta la URL o el fragmento")
		os.Exit(2)
	}
	_ = fs.Parse(args[1:])

	inv, err := uc.Decode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar: %v\n", err)
		os.Exit(1)
	}
	gen := pdf.NewMarotoPDFGenerator()
	doc, err := gen.GenerateInvoicePDF(inv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar PDF: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, doc, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir PDF: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("PDF escrito en %s (%d bytes)\n", *out, len(doc))
}
