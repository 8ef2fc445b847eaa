package main

import (
	"fmt"
	"log"

	"fin-advisor-be/internal/config"
	"fin-advisor-be/internal/model"
	"fin-advisor-be/pkg/database"
	"fin-advisor-be/pkg/embedding"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// Seeds the starter knowledge corpus. Runs once: a non-empty table is left
// untouched so re-running after real documents were added never duplicates.
func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var count int64
	if err := db.Model(&model.KnowledgeDocument{}).Count(&count).Error; err != nil {
		log.Fatalf("Error: Failed to count knowledge documents: %v", err)
	}
	if count > 0 {
		log.Printf("Knowledge base already contains %d documents. Skipping seed.", count)
		return
	}

	var embedder embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embedder = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embedder = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	log.Printf("Seeding %d knowledge documents...", len(seedCorpus))

	for i, doc := range seedCorpus {
		id := fmt.Sprintf("doc%d", i+1)

		record := model.KnowledgeDocument{
			Id:      id,
			Content: doc.content,
			Metadata: datatypes.JSONMap{
				"source":   "financial_glossary",
				"category": doc.category,
			},
		}

		// Embed inline so the corpus is searchable without the consumer running.
		res, err := embedder.Generate(doc.content, embedding.TaskTypeDocument)
		if err != nil {
			log.Printf("Warn: embedding failed for %s, stored without vector: %v", id, err)
		} else {
			vec := pgvector.NewVector(res.Embedding.Values)
			record.Embedding = &vec
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error creating document %s: %v", id, err)
			continue
		}
		log.Printf("Created document: %s (%s)", id, doc.category)
	}

	log.Println("Knowledge seeding completed!")
}

type seedDocument struct {
	content  string
	category string
}

var seedCorpus = []seedDocument{
	{"Diversification is a strategy employed to minimize risk by investing in a variety of assets. It aims to reduce the impact of any single asset's poor performance on the overall portfolio.", "risk_management"},
	{"Compounding is the process where the earnings from an investment are reinvested to generate additional earnings over time. It's often referred to as 'interest on interest' and is a powerful concept for long-term wealth growth.", "investing"},
	{"An emergency fund is a stash of money set aside to cover unexpected expenses, such as job loss, medical emergencies, or major car repairs. Financial experts often recommend having 3-6 months' worth of living expenses saved.", "personal_finance"},
	{"Inflation is the rate at which the general level of prices for goods and services is rising, and subsequently, purchasing power is falling. Central banks aim to keep inflation stable to maintain economic health.", "economics"},
	{"A budget is a financial plan that helps you track your income and expenses, allowing you to see where your money is going and make informed decisions about spending and saving.", "personal_finance"},
	{"ETFs (Exchange Traded Funds) are a type of investment fund that holds multiple underlying assets and trades on stock exchanges like individual stocks. They offer diversification and liquidity.", "investing"},
	{"Bonds are debt instruments issued by governments or corporations to raise capital. When you buy a bond, you're lending money in exchange for periodic interest payments and the return of your principal at maturity.", "investing"},
	{"Retirement planning involves setting financial goals for your post-working life and developing strategies to achieve them, often through savings accounts like 401(k)s or IRAs.", "retirement"},
	{"Cryptocurrency is a digital or virtual currency that is secured by cryptography, making it nearly impossible to counterfeit or double-spend. Many cryptocurrencies are decentralized networks based on blockchain technology.", "cryptocurrency"},
	{"Risk tolerance is the degree of variability in investment returns that an investor is willing to withstand. It's a crucial factor in determining an appropriate asset allocation for a portfolio.", "risk_management"},
	{"Dollar-cost averaging is an investment strategy where you invest a fixed amount of money at regular intervals, regardless of market conditions. This helps reduce the impact of market volatility.", "investing"},
	{"A Roth IRA is a retirement account where contributions are made with after-tax dollars, but qualified withdrawals in retirement are tax-free. This is particularly beneficial for younger investors.", "retirement"},
	{"Credit score is a numerical representation of your creditworthiness, typically ranging from 300 to 850. It affects your ability to get loans and the interest rates you'll pay.", "credit"},
	{"Asset allocation is the strategy of dividing your investment portfolio among different asset categories, such as stocks, bonds, and cash, based on your goals, risk tolerance, and time horizon.", "investing"},
}
