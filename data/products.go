package data

import "wepink-store/models"

// Products is the compiled-in store catalog. The products collection is
// seeded from this list on startup when empty; ids are stable and referenced
// by carts and orders.
var Products = []models.Product{
	{
		ID:               "1",
		Name:             "Kit 5 Body Splash - Wepink",
		Description:      "Kit com 5 body splashes de 200ml: Magnific, Sweet Honey, Garden, Only Her e Paradise.",
		OriginalPrice:    349.50,
		CurrentPrice:     149.90,
		Installments:     3,
		InstallmentValue: 49.97,
		Image:            "/kit.jpeg",
	},
	{
		ID:               "kit-1",
		Name:             "Kit 3 Body Splash Favoritos",
		Description:      "Os três body splashes mais vendidos em um único kit: Magnific, Sweet Honey e Paradise.",
		OriginalPrice:    209.70,
		CurrentPrice:     119.90,
		Installments:     3,
		InstallmentValue: 39.97,
		Image:            "/kit-favoritos.jpeg",
	},
	{
		ID:               "kit-2",
		Name:             "Kit 2 Body Splash + Hidratante",
		Description:      "Dois body splashes de 200ml acompanhados do hidratante corporal Vitamina E 250g.",
		OriginalPrice:    189.80,
		CurrentPrice:     99.90,
		Installments:     2,
		InstallmentValue: 49.95,
		Image:            "/kit-hidratante.jpeg",
	},
	{
		ID:               "kit-3",
		Name:             "Kit Presente Wepink",
		Description:      "Body splash, sabonete líquido e necessaire exclusiva em embalagem de presente.",
		OriginalPrice:    159.90,
		CurrentPrice:     89.90,
		Installments:     2,
		InstallmentValue: 44.95,
		Image:            "/kit-presente.jpeg",
	},
	{
		ID:               "kit-4",
		Name:             "Kit Completo Rotina Corporal",
		Description:      "Body splash, esfoliante, hidratante e sabonete em barra para a rotina completa.",
		OriginalPrice:    259.60,
		CurrentPrice:     139.90,
		Installments:     3,
		InstallmentValue: 46.63,
		Image:            "/kit-rotina.jpeg",
		OutOfStock:       true,
	},
	{
		ID:               "2",
		Name:             "Body Splash Magnific 200ml",
		Description:      "Fragrância marcante com notas de baunilha e âmbar.",
		OriginalPrice:    69.90,
		CurrentPrice:     39.90,
		Installments:     2,
		InstallmentValue: 19.95,
		Image:            "/magnific.jpeg",
	},
	{
		ID:               "3",
		Name:             "Body Splash Sweet Honey 200ml",
		Description:      "Mel, flor de laranjeira e um toque de pêssego.",
		OriginalPrice:    69.90,
		CurrentPrice:     39.90,
		Installments:     2,
		InstallmentValue: 19.95,
		Image:            "/sweet-honey.jpeg",
	},
	{
		ID:               "4",
		Name:             "Body Splash Paradise 200ml",
		Description:      "Frutas tropicais com fundo amadeirado suave.",
		OriginalPrice:    69.90,
		CurrentPrice:     39.90,
		Installments:     2,
		InstallmentValue: 19.95,
		Image:            "/paradise.jpeg",
	},
	{
		ID:               "5",
		Name:             "Body Splash Only Her 200ml",
		Description:      "Floral delicado com notas de jasmim e almíscar branco.",
		OriginalPrice:    69.90,
		CurrentPrice:     44.90,
		Installments:     2,
		InstallmentValue: 22.45,
		Image:            "/only-her.jpeg",
	},
	{
		ID:               "6",
		Name:             "Hidratante Corporal Vitamina E 250g",
		Description:      "Hidratação profunda com vitamina E e manteiga de karité.",
		OriginalPrice:    59.90,
		CurrentPrice:     34.90,
		Installments:     1,
		InstallmentValue: 34.90,
		Image:            "/hidratante.jpeg",
	},
}
