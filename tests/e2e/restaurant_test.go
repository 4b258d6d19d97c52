//go:build integration

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type inventoryItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Yield    float64 `json:"yield"`
	Unit     string  `json:"unit"`
	Supplier string  `json:"supplier"`
	Cost     float64 `json:"cost"`
	Quantity float64 `json:"quantity"`
}

type purchaseOrder struct {
	ID        string          `json:"_id"`
	Supplier  string          `json:"supplier"`
	Items     []inventoryItem `json:"items"`
	TotalCost float64         `json:"totalCost"`
}

type costPerUnitEntry struct {
	Name        string   `json:"name"`
	Unit        string   `json:"unit"`
	CostPerUnit *float64 `json:"costPerUnit"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func postForm(path string, form url.Values) (int, []byte) {
	resp, err := httpClient.Post(baseURL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	return resp.StatusCode, body
}

func get(path string) (int, []byte) {
	resp, err := httpClient.Get(baseURL + path)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	return resp.StatusCode, body
}

func decode[T any](body []byte) T {
	var v T
	Expect(json.Unmarshal(body, &v)).To(Succeed())
	return v
}

func createItem(form url.Values) inventoryItem {
	status, body := postForm("/inventory", form)
	Expect(status).To(Equal(http.StatusOK), string(body))
	return decode[inventoryItem](body)
}

var _ = Describe("Restaurant inventory e2e", func() {
	BeforeEach(func() {
		By("cleaning collections")
		Expect(mongoC.Reset(ctx, inventoryCollection, ordersCollection)).To(Succeed())
	})

	Context("POST /inventory", func() {
		It("stores the item and echoes it with an id", func() {
			item := createItem(url.Values{
				"name": {"Flour"}, "yield": {"10"}, "unit": {"kg"},
				"supplier": {"AcmeFoods"}, "cost": {"20"}, "quantity": {"5"},
			})

			Expect(item.ID).NotTo(BeEmpty())
			Expect(item.Name).To(Equal("Flour"))
			Expect(item.Yield).To(Equal(10.0))
			Expect(item.Cost).To(Equal(20.0))

			By("reading the document straight from mongo")
			var doc bson.M
			Expect(inventoryColl.FindOne(ctx, bson.M{"_id": item.ID}).Decode(&doc)).To(Succeed())
			Expect(doc["supplier"]).To(Equal("AcmeFoods"))
			Expect(doc["quantity"]).To(Equal(5.0))
		})

		It("creates a new document for every identical request", func() {
			form := url.Values{"name": {gofakeit.ProductName()}, "supplier": {"AcmeFoods"}}
			first := createItem(form)
			second := createItem(form)

			Expect(first.ID).NotTo(Equal(second.ID))

			n, err := inventoryColl.CountDocuments(ctx, bson.M{})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
		})

		It("rejects a non-numeric cost", func() {
			status, body := postForm("/inventory", url.Values{"name": {"Flour"}, "cost": {"abc"}})

			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(decode[errorBody](body).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("POST /purchase-orders", func() {
		It("snapshots the supplier's items and totals cost times quantity", func() {
			createItem(url.Values{"name": {"Flour"}, "yield": {"10"}, "unit": {"kg"}, "supplier": {"AcmeFoods"}, "cost": {"20"}, "quantity": {"5"}})
			createItem(url.Values{"name": {"Sugar"}, "yield": {"1"}, "unit": {"kg"}, "supplier": {"AcmeFoods"}, "cost": {"4"}, "quantity": {"5"}})
			createItem(url.Values{"name": {"Milk"}, "unit": {"l"}, "supplier": {"DairyCo"}, "cost": {"3"}, "quantity": {"2"}})

			status, body := postForm("/purchase-orders", url.Values{"supplier": {"AcmeFoods"}})
			Expect(status).To(Equal(http.StatusOK), string(body))

			order := decode[purchaseOrder](body)
			Expect(order.ID).NotTo(BeEmpty())
			Expect(order.Supplier).To(Equal("AcmeFoods"))
			Expect(order.TotalCost).To(Equal(120.0))
			Expect(order.Items).To(HaveLen(2))
			Expect([]string{order.Items[0].Name, order.Items[1].Name}).To(Equal([]string{"Flour", "Sugar"}))

			By("fetching the stored order")
			status, body = get("/purchase-orders/" + order.ID)
			Expect(status).To(Equal(http.StatusOK))
			Expect(decode[purchaseOrder](body).TotalCost).To(Equal(120.0))
		})

		It("stores an empty order for an unknown supplier", func() {
			status, body := postForm("/purchase-orders", url.Values{"supplier": {"Nobody"}})
			Expect(status).To(Equal(http.StatusOK))
			Expect(string(body)).To(ContainSubstring(`"items":[]`))
			Expect(decode[purchaseOrder](body).TotalCost).To(BeZero())

			n, err := ordersColl.CountDocuments(ctx, bson.M{"supplier": "Nobody"})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))
		})

		It("keeps the snapshot when inventory changes later", func() {
			item := createItem(url.Values{"name": {"Flour"}, "supplier": {"AcmeFoods"}, "cost": {"20"}, "quantity": {"5"}})

			_, body := postForm("/purchase-orders", url.Values{"supplier": {"AcmeFoods"}})
			order := decode[purchaseOrder](body)

			_, err := inventoryColl.UpdateOne(ctx, bson.M{"_id": item.ID}, bson.M{"$set": bson.M{"cost": 999.0}})
			Expect(err).NotTo(HaveOccurred())

			_, body = get("/purchase-orders/" + order.ID)
			stored := decode[purchaseOrder](body)
			Expect(stored.Items[0].Cost).To(Equal(20.0))
			Expect(stored.TotalCost).To(Equal(100.0))
		})

		It("returns 404 for an unknown order id", func() {
			status, body := get("/purchase-orders/" + gofakeit.UUID())
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(decode[errorBody](body).Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("GET /cost-per-unit", func() {
		It("divides cost by yield and reports null for zero yield", func() {
			createItem(url.Values{"name": {"Flour"}, "yield": {"10"}, "unit": {"kg"}, "cost": {"20"}})
			createItem(url.Values{"name": {"Salt"}, "unit": {"g"}, "cost": {"3"}})

			status, body := get("/cost-per-unit")
			Expect(status).To(Equal(http.StatusOK))

			entries := decode[[]costPerUnitEntry](body)
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Name).To(Equal("Flour"))
			Expect(entries[0].CostPerUnit).NotTo(BeNil())
			Expect(*entries[0].CostPerUnit).To(Equal(2.0))
			Expect(entries[1].CostPerUnit).To(BeNil())
		})
	})

	Context("GET /inventory", func() {
		It("filters by supplier", func() {
			createItem(url.Values{"name": {"Flour"}, "supplier": {"AcmeFoods"}})
			createItem(url.Values{"name": {"Milk"}, "supplier": {"DairyCo"}})

			status, body := get("/inventory?supplier=DairyCo")
			Expect(status).To(Equal(http.StatusOK))

			items := decode[[]inventoryItem](body)
			Expect(items).To(HaveLen(1))
			Expect(items[0].Name).To(Equal("Milk"))

			_, body = get("/inventory")
			Expect(decode[[]inventoryItem](body)).To(HaveLen(2))
		})
	})
})
