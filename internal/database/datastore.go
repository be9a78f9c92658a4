package database

// DataStore is the full set of data operations, one DAO per entity.
type DataStore interface {
	DepartmentStore() DepartmentDAO
	SellerStore() SellerDAO
}

// DepartmentStore returns the department DAO.
func (r *Repository) DepartmentStore() DepartmentDAO { return r.Departments }

// SellerStore returns the seller DAO.
func (r *Repository) SellerStore() SellerDAO { return r.Sellers }
