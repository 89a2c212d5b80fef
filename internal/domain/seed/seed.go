// Package seed holds the static records used to populate an empty store and
// the offline external-model catalog.
package seed

import (
	"time"

	"agencia_maker/internal/domain/entities"
)

// Users returns a fresh copy of the initial user roster.
func Users() []entities.User {
	return []entities.User{
		{
			ID:          "maker-1",
			Name:        "Carlos Silva",
			Email:       "carlos.silva@example.com",
			Roles:       []entities.UserRole{entities.UserRoleMaker, entities.UserRoleProjetista},
			AvatarURL:   "https://picsum.photos/seed/carlos/200",
			Rating:      4.9,
			Reviews:     124,
			Location:    "Rio Verde, GO",
			Specialties: []string{"Prototipagem Rápida", "Peças Automotivas"},
			IsCertified: true,
			Printers: []entities.Printer{
				{ID: "p1", Name: "Creality Ender 3", Model: "FDM", MaterialTypes: []string{"PLA", "ABS", "PETG"}},
			},
			Portfolio: []entities.PortfolioItem{
				{ID: "port1", ImageURL: "https://picsum.photos/seed/port1/400/300", Title: "Engrenagem Industrial"},
				{ID: "port2", ImageURL: "https://picsum.photos/seed/port2/400/300", Title: "Suporte para Drone"},
			},
			Services:          []string{"Impressão 3D sob demanda", "Modelagem 3D CAD", "Engenharia Reversa"},
			Software:          []string{"SolidWorks", "Fusion 360"},
			AvgComplexityTime: "2-5 dias",
			BasePrice:         150,
		},
		{
			ID:          "maker-2",
			Name:        "Ana Pereira",
			Email:       "ana.pereira@example.com",
			Roles:       []entities.UserRole{entities.UserRoleProjetista},
			AvatarURL:   "https://picsum.photos/seed/ana/200",
			Rating:      5.0,
			Reviews:     89,
			Location:    "Rio Verde, GO",
			Specialties: []string{"Design de Personagens", "Acessibilidade"},
			Portfolio: []entities.PortfolioItem{
				{ID: "port3", ImageURL: "https://picsum.photos/seed/port3/400/300", Title: "Personagem para Jogo"},
				{ID: "port4", ImageURL: "https://picsum.photos/seed/port4/400/300", Title: "Abridor de Garrafa Adaptado"},
			},
			Services:          []string{"Modelagem 3D Orgânica", "Consultoria de Design"},
			Software:          []string{"Blender", "ZBrush"},
			AvgComplexityTime: "3-7 dias",
			BasePrice:         200,
		},
		{
			ID:          "maker-3",
			Name:        "João Mendes",
			Email:       "joao.mendes@example.com",
			Roles:       []entities.UserRole{entities.UserRoleMaker},
			AvatarURL:   "https://picsum.photos/seed/joao/200",
			Rating:      4.8,
			Reviews:     210,
			Location:    "Jataí, GO",
			Specialties: []string{"Peças para o Agro", "Grande Formato"},
			Printers: []entities.Printer{
				{ID: "p2", Name: "Creality CR-10", Model: "FDM", MaterialTypes: []string{"PLA+", "PETG"}},
				{ID: "p3", Name: "Anycubic Photon", Model: "SLA", MaterialTypes: []string{"Resina Padrão", "Resina Rígida"}},
			},
			Services: []string{"Impressão 3D de alta precisão"},
		},
		{
			ID:          "client-1",
			Name:        "Cliente UniRV",
			Email:       "cliente@unirv.edu.br",
			Roles:       []entities.UserRole{entities.UserRoleCliente},
			AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
			Location:    "Rio Verde, GO",
			Specialties: []string{},
		},
	}
}

// PrintJobs returns the initial job board, newest first, with creation times
// relative to now.
func PrintJobs(now time.Time) []entities.PrintJob {
	now = now.UTC()
	return []entities.PrintJob{
		{
			ID:            "job-1",
			ClientID:      "client-123",
			ClientName:    "Mariana Lima",
			Title:         "Suporte para Headset",
			Description:   "Preciso de um suporte para headset para colocar na minha mesa. Encontrei o modelo no Thingiverse. Quero na cor preta.",
			Material:      "PLA",
			Color:         "Preto",
			FileURL:       "https://www.thingiverse.com/thing:2098322",
			Status:        entities.PrintJobStatusAberto,
			PaymentStatus: entities.PaymentStatusPendente,
			Price:         45.00,
			ServiceFee:    6.75,
			CreatedAt:     now.Add(-30 * time.Minute),
		},
		{
			ID:            "job-2",
			ClientID:      "client-456",
			ClientName:    "Fazenda AgroTech",
			Title:         "Clipe de Reposição para Pulverizador",
			Description:   "O clipe que prende a mangueira do pulverizador quebrou. Preciso de uma réplica resistente. Anexei fotos e medidas.",
			Material:      "PETG",
			Color:         "Laranja",
			Status:        entities.PrintJobStatusEmAndamento,
			PaymentStatus: entities.PaymentStatusPago,
			Price:         120.00,
			ServiceFee:    18.00,
			CreatedAt:     now.Add(-3 * time.Hour),
		},
		{
			ID:            "job-3",
			ClientID:      "client-789",
			ClientName:    "Pedro Antunes",
			Title:         "Caixa para componentes eletrônicos",
			Description:   "Estou montando um projeto com Arduino e preciso de uma caixa personalizada para proteger os componentes. O design já está pronto em .STL.",
			Material:      "ABS",
			Color:         "Cinza Grafite",
			Status:        entities.PrintJobStatusAberto,
			PaymentStatus: entities.PaymentStatusPendente,
			Price:         60.00,
			ServiceFee:    9.00,
			CreatedAt:     now.Add(-24 * time.Hour),
		},
	}
}

func Conversations(now time.Time) []entities.Conversation {
	now = now.UTC()
	return []entities.Conversation{
		{
			ID:             "convo-1",
			ParticipantIDs: [2]string{"maker-1", "maker-2"},
			Messages: []entities.ChatMessage{
				{ID: "msg-1", SenderID: "maker-2", Text: "Oi Carlos, tudo bem? Vi seu novo projeto de engrenagem, ficou show!", Timestamp: now.Add(-5 * time.Minute)},
				{ID: "msg-2", SenderID: "maker-1", Text: "Olá Ana! Que bom que gostou. Deu um trabalhão pra modelar.", Timestamp: now.Add(-4 * time.Minute)},
				{ID: "msg-3", SenderID: "maker-2", Text: "Imagino. Você tem alguma dica de filamento PETG que não entope muito?", Timestamp: now.Add(-2 * time.Minute)},
			},
		},
		{
			ID:             "convo-2",
			ParticipantIDs: [2]string{"maker-1", "maker-3"},
			Messages: []entities.ChatMessage{
				{ID: "msg-4", SenderID: "maker-3", Text: "E aí, Carlos. A prefeitura entrou em contato sobre aquele projeto das lixeiras?", Timestamp: now.Add(-24 * time.Hour)},
				{ID: "msg-5", SenderID: "maker-1", Text: "Opa, João. Falaram comigo sim, passei seu contato pra eles verem a parte de impressão em grande formato.", Timestamp: now.Add(-23 * time.Hour)},
			},
		},
	}
}

// ExternalCatalog is the offline stand-in for third-party model marketplaces.
// Image URLs are left empty; the search layer fills them in.
func ExternalCatalog() []entities.ExternalModel {
	return []entities.ExternalModel{
		{ID: "1", Title: "Low Poly Pikachu", Source: entities.ModelSourceThingiverse, Author: "flowalistik", Link: "https://www.thingiverse.com", IsFree: true},
		{ID: "2", Title: "Articulated Dragon", Source: entities.ModelSourceCults3D, Author: "McGybeer", Link: "https://cults3d.com", IsFree: false},
		{ID: "3", Title: "Headphone Stand", Source: entities.ModelSourcePrintables, Author: "MakerBot", Link: "https://www.printables.com", IsFree: true},
		{ID: "4", Title: "Voronoi Vase", Source: entities.ModelSourceThingiverse, Author: "architecture", Link: "https://www.thingiverse.com", IsFree: true},
		{ID: "5", Title: "Cable Organizer", Source: entities.ModelSourcePrintables, Author: "organizer_pro", Link: "https://www.printables.com", IsFree: true},
		{ID: "6", Title: "Phone Stand Modular", Source: entities.ModelSourceMyMiniFactory, Author: "DesignStudio", Link: "https://www.myminifactory.com", IsFree: true},
		{ID: "7", Title: "Raspberry Pi Case", Source: entities.ModelSourceThingiverse, Author: "PiMaster", Link: "https://www.thingiverse.com", IsFree: true},
		{ID: "8", Title: "Batman Bust", Source: entities.ModelSourceCults3D, Author: "Eastman", Link: "https://cults3d.com", IsFree: false},
		{ID: "9", Title: "Wall Planter", Source: entities.ModelSourcePrintables, Author: "GreenThumb", Link: "https://www.printables.com", IsFree: true},
	}
}

// SuggestedCatalogIndexes is the curated "trending" subset of ExternalCatalog.
var SuggestedCatalogIndexes = []int{0, 3, 5, 1, 8, 6}
