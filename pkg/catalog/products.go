package catalog

import "github.com/example/moldz3d/pkg/models"

// Built-in storefront catalog. Prices in BRL.
var fixtures = []models.Product{
	{
		ID:            "1",
		Name:          "Suporte Gengar para Controle (PS5 e PS4)",
		Description:   "Suporte decorativo para controle PS5 com duas variações: Estilo Felpudo e Estilo Liso.",
		Price:         49.0,
		OriginalPrice: 65.0,
		Images:        []string{"/produtos/gengar3.jpg", "/produtos/gengar4.jpg"},
		Category:      "Acessórios",
		Material:      "PLA",
		Rating:        4.9,
		Reviews:       88,
		InStock:       true,
		Featured:      true,
		Variants: []models.Variant{
			{
				ID:            "1-gengar-felpudo",
				Label:         "Estilo Felpudo",
				Model:         "Estilo Felpudo",
				Price:         49.0,
				OriginalPrice: 65.0,
				InStock:       true,
				Images:        []string{"/produtos/gengar1.jpg"},
			},
			{
				ID:            "1-gengar-liso",
				Label:         "Estilo Liso",
				Model:         "Estilo Liso",
				Price:         49.0,
				OriginalPrice: 69.0,
				InStock:       true,
				Images:        []string{"/produtos/gengar2.jpg", "/produtos/gengar3.jpg"},
			},
		},
	},
	{
		ID:          "2",
		Name:        "Máscara Cyber Oni",
		Description: "Máscara de cosplay inspirada em cultura cyberpunk japonesa. Impressa em resina de alta qualidade.",
		Price:       120.0,
		Image:       "/produtos/cyber-oni.jpg",
		Category:    "Cosplay",
		Material:    "Resina",
		Rating:      4.7,
		Reviews:     54,
		InStock:     true,
		Featured:    true,
		Specifications: map[string]string{
			"Layer Height": "0.05mm",
			"Material":     "Resina ABS-like",
			"Print Time":   "18 horas",
		},
	},
	{
		ID:            "3",
		Name:          "Miniatura Dragão Ancião",
		Description:   "Miniatura articulada de dragão para RPG de mesa, impressa em PLA com acabamento detalhado.",
		Price:         89.9,
		OriginalPrice: 110.0,
		Image:         "/produtos/dragao.jpg",
		Category:      "Miniaturas",
		Material:      "PLA",
		Rating:        4.8,
		Reviews:       127,
		InStock:       true,
		Featured:      false,
		DealOfTheDay:  true,
	},
	{
		ID:          "4",
		Name:        "Vaso Geométrico Low Poly",
		Description: "Vaso decorativo em estilo low poly para plantas pequenas e suculentas.",
		Price:       35.0,
		Image:       "/produtos/vaso.jpg",
		Category:    "Decoração",
		Material:    "PETG",
		Rating:      4.5,
		Reviews:     43,
		InStock:     true,
	},
	{
		ID:          "5",
		Name:        "Suporte de Headset RGB",
		Description: "Suporte de mesa para headset com canal para fita LED.",
		Price:       59.0,
		Image:       "/produtos/headset.jpg",
		Category:    "Acessórios",
		Material:    "PLA",
		Rating:      4.6,
		Reviews:     71,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "6",
		Name:        "Luminária Lua 3D",
		Description: "Luminária esférica com textura da superfície lunar, base de madeira inclusa.",
		Price:       145.0,
		Image:       "/produtos/lua.jpg",
		Category:    "Decoração",
		Material:    "PLA",
		Rating:      4.9,
		Reviews:     203,
		InStock:     true,
	},
	{
		ID:          "7",
		Name:        "Organizador de Mesa Modular",
		Description: "Sistema modular de organização para escritório, peças encaixáveis.",
		Price:       25.0,
		Image:       "/produtos/organizador.jpg",
		Category:    "Organização",
		Material:    "PETG",
		Rating:      4.3,
		Reviews:     36,
		InStock:     true,
	},
	{
		ID:          "8",
		Name:        "Action Figure Samurai Mecha",
		Description: "Action figure articulada estilo mecha samurai, 22cm de altura.",
		Price:       199.0,
		Image:       "/produtos/samurai.jpg",
		Category:    "Miniaturas",
		Material:    "Resina",
		Rating:      4.8,
		Reviews:     95,
		InStock:     false,
	},
	{
		ID:          "9",
		Name:        "Capa Texturizada para Nintendo Switch",
		Description: "Capa protetora com grip texturizado para Nintendo Switch, disponível em duas cores.",
		Price:       42.0,
		Images:      []string{"/produtos/capaswitch.jpg", "/produtos/capaswitch2.png"},
		Category:    "Acessórios",
		Material:    "PLA",
		Rating:      4.4,
		Reviews:     52,
		InStock:     true,
		Variants: []models.Variant{
			{
				ID:      "9-switch-preta",
				Label:   "Preta Fosca",
				Model:   "Preta Fosca",
				Price:   42.0,
				InStock: true,
				Images:  []string{"/produtos/capaswitch.jpg"},
			},
			{
				ID:      "9-switch-vermelha",
				Label:   "Vermelha Neon",
				Model:   "Vermelha Neon",
				Price:   45.0,
				InStock: true,
				Images:  []string{"/produtos/capaswitch3.png"},
			},
		},
	},
	{
		ID:            "10",
		Name:          "Busto Hollow Knight",
		Description:   "Busto colecionável do Cavaleiro em resina, pintado à mão.",
		Price:         75.0,
		OriginalPrice: 95.0,
		Image:         "/produtos/hollow.jpg",
		Category:      "Miniaturas",
		Material:      "Resina",
		Rating:        4.9,
		Reviews:       148,
		InStock:       true,
		DealOfTheDay:  true,
		Specifications: map[string]string{
			"Layer Height": "0.05mm",
			"Material":     "Resina ABS-like",
			"Print Time":   "9 horas",
			"Weight":       "210g",
		},
	},
	{
		ID:          "11",
		Name:        "Chaveiro Companion Cube",
		Description: "Chaveiro do cubo de companhia, impresso em PLA com duas cores.",
		Price:       15.0,
		Image:       "/produtos/cubo.jpg",
		Category:    "Chaveiros",
		Material:    "PLA",
		Rating:      4.2,
		Reviews:     64,
		InStock:     true,
	},
	{
		ID:          "12",
		Name:        "Dado D20 Gigante com Gaveta",
		Description: "D20 decorativo de 12cm com gaveta secreta para mini dados.",
		Price:       65.0,
		Image:       "/produtos/d20.jpg",
		Category:    "Jogos",
		Material:    "Resina",
		Rating:      4.6,
		Reviews:     39,
		InStock:     true,
		Specifications: map[string]string{
			"Material":   "Resina Cristal",
			"Print Time": "11 horas",
			"Weight":     "180g",
		},
	},
}
